package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/delivery"
	authusecase "github.com/daniellfalcao/dark-blue-parrot-server/internal/auth/usecase"
	postdelivery "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/delivery"
	postusecase "github.com/daniellfalcao/dark-blue-parrot-server/internal/post/usecase"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/config"
	"github.com/daniellfalcao/dark-blue-parrot-server/pkg/token"
)

// SetupRoutes wires every RPC method through the authorization gate. All
// methods are POST except the SSE stream and the healthcheck.
func SetupRoutes(r *gin.Engine, authUc authusecase.AuthUsecase, postUc postusecase.PostUsecase, codec *token.Codec, cfg *config.Config) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	postHandler := postdelivery.NewPostHandler(postUc, cfg)

	register(r, codec, http.MethodGet, authdelivery.MethodHealthz, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	register(r, codec, http.MethodPost, authdelivery.MethodSignIn, authHandler.SignIn)
	register(r, codec, http.MethodPost, authdelivery.MethodSignOut, authHandler.SignOut)
	register(r, codec, http.MethodPost, authdelivery.MethodSignUp, authHandler.SignUp)
	register(r, codec, http.MethodPost, authdelivery.MethodCheckUsernameAvailability, authHandler.CheckUsernameAvailability)

	register(r, codec, http.MethodPost, authdelivery.MethodCreatePost, postHandler.CreatePost)
	register(r, codec, http.MethodPost, authdelivery.MethodGetPost, postHandler.GetPost)
	register(r, codec, http.MethodGet, authdelivery.MethodGetPostStream, postHandler.GetPostStream)
	register(r, codec, http.MethodPost, authdelivery.MethodGetPosts, postHandler.GetPosts)
	register(r, codec, http.MethodPost, authdelivery.MethodGetMyPosts, postHandler.GetMyPosts)
	register(r, codec, http.MethodPost, authdelivery.MethodEditPost, postHandler.EditPost)
	register(r, codec, http.MethodPost, authdelivery.MethodDeletePost, postHandler.DeletePost)
	register(r, codec, http.MethodPost, authdelivery.MethodSwapLikePost, postHandler.SwapLikePost)
}

// register serves method at its own path behind the gate. Gate panics during
// wiring when method has no policy entry, so every served method carries an
// explicit authorization decision.
func register(r *gin.Engine, codec *token.Codec, httpMethod, method string, handler gin.HandlerFunc) {
	r.Handle(httpMethod, "/"+method, authdelivery.Gate(codec, method), handler)
}
