package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"ait/cmd/fx/chat_fx"
	"ait/cmd/fx/config_fx"
	"ait/cmd/fx/contact_fx"
	"ait/cmd/fx/controllers_fx"
	"ait/cmd/fx/llm_fx"
	"ait/cmd/fx/logger_fx"
	"ait/cmd/fx/mail_fx"
	"ait/cmd/fx/memcache_fx"
	"ait/cmd/fx/metrics_fx"
	"ait/cmd/fx/planner_fx"
	"ait/internal/api/controllers"
	"ait/internal/config"
	"ait/pkg/metrics"
	"ait/pkg/middleware"
	"ait/web"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		config_fx.Module,
		logger_fx.Module,
		metrics_fx.Module,
		memcache_fx.Module,
		llm_fx.Module,
		planner_fx.Module,
		chat_fx.Module,
		mail_fx.Module,
		contact_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.AppConfig, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config   *config.AppConfig
	Logger   *zap.Logger
	Registry *prometheus.Registry

	Pages   *controllers.PagesController
	Planner *controllers.PlannerController
	Chat    *controllers.ChatController
	Contact *controllers.ContactController
	System  *controllers.SystemController
}

func ProvideRouter(p RouterParams) (*gin.Engine, error) {
	gin.SetMode(p.Config.Server.GinMode)

	tmpl, err := web.Templates(controllers.TemplateFuncs())
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger.Named("http")))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(p.Config.Server.CORSAllowedOrigins))
	r.SetHTMLTemplate(tmpl)

	RegisterRoutes(r, p)

	return r, nil
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	r.GET("/", p.Pages.Index)
	r.GET("/destinations/", p.Pages.Destinations)
	r.GET("/about/", p.Pages.About)
	r.GET("/chatbot/", p.Pages.Chatbot)

	r.GET("/planner/", p.Planner.ShowForm)
	r.POST("/planner/", p.Planner.PlanHandler)

	r.POST("/chatbot-response/", p.Chat.ReplyHandler)
	r.POST("/chat-api/", p.Chat.ReplyHandler)

	r.GET("/contact/", p.Contact.ShowForm)
	r.POST("/contact/", p.Contact.SubmitHandler)

	api := r.Group("/api/v1")
	api.POST("/itinerary", p.Planner.CreateItineraryHandler)

	r.GET("/health", p.System.HealthHandler)
	r.GET("/metrics", gin.WrapH(metrics.Handler(p.Registry)))
	r.StaticFS("/static", http.FS(web.Static()))

	r.NoRoute(p.Pages.NotFound)
}
