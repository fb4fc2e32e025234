package controllers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"ait/internal/services"
)

// TemplateFuncs are the helpers every page template may call.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"iconFor":      func(line string) string { return services.IconFor(line).Emoji },
		"calendarIcon": func() string { return services.IconCalendar.Emoji },
	}
}

// page builds the data every template expects: Title and Active drive the shared header.
func page(title, active string, data gin.H) gin.H {
	out := gin.H{"Title": title, "Active": active}
	for k, v := range data {
		out[k] = v
	}
	return out
}

func renderError(c *gin.Context, code int, message, back string) {
	c.HTML(code, "error.html", page("Error", "", gin.H{"Error": message, "Back": back}))
}

type PagesController struct{}

func NewPagesController() *PagesController {
	return &PagesController{}
}

func (p *PagesController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", page("", "home", nil))
}

func (p *PagesController) Destinations(c *gin.Context) {
	c.HTML(http.StatusOK, "destinations.html", page("Destinations", "destinations", nil))
}

func (p *PagesController) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", page("About", "about", nil))
}

func (p *PagesController) Chatbot(c *gin.Context) {
	c.HTML(http.StatusOK, "chatbot.html", page("Chatbot", "chatbot", nil))
}

func (p *PagesController) NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page not found.", "/")
}
