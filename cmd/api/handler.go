package api

import (
	"github.com/gin-gonic/gin"

	authusecase "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/usecase"
	postusecase "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/usecase"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/token"
)

type Handler struct {
	engine *gin.Engine
}

func NewHandler(authUc authusecase.AuthUsecase, postUc postusecase.PostUsecase, codec *token.Codec, cfg *config.Config) *Handler {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	SetupRoutes(r, authUc, postUc, codec, cfg)

	return &Handler{engine: r}
}

// Engine exposes the router so main can run it inside an http.Server with
// graceful shutdown.
func (h *Handler) Engine() *gin.Engine {
	return h.engine
}
