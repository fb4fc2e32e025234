package chat_fx

import (
	"go.uber.org/fx"

	"ait/internal/services"
)

var Module = fx.Provide(
	fx.Annotate(services.NewChatService, fx.ParamTags(`name:"chat"`)),
)
