package controllers_fx

import (
	"go.uber.org/fx"

	"ait/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPagesController),
	fx.Provide(controllers.NewPlannerController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewContactController),
	fx.Provide(fx.Annotate(controllers.NewSystemController, fx.ParamTags(`name:"planner"`, `name:"chat"`))),
)
