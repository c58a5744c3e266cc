package delivery

import "fmt"

// Method names of the RPC surface, used both as route paths and as keys of
// the authorization policy table.
const (
	MethodSignIn                    = "parrot.AuthenticationService/SignIn"
	MethodSignOut                   = "parrot.AuthenticationService/SignOut"
	MethodSignUp                    = "parrot.RegisterService/SignUp"
	MethodCheckUsernameAvailability = "parrot.RegisterService/CheckUsernameAvailability"
	MethodCreatePost                = "parrot.PostService/CreatePost"
	MethodGetPost                   = "parrot.PostService/GetPost"
	MethodGetPostStream             = "parrot.PostService/GetPostStream"
	MethodGetPosts                  = "parrot.PostService/GetPosts"
	MethodGetMyPosts                = "parrot.PostService/GetMyPosts"
	MethodEditPost                  = "parrot.PostService/EditPost"
	MethodDeletePost                = "parrot.PostService/DeletePost"
	MethodSwapLikePost              = "parrot.PostService/SwapLikePost"
	MethodHealthz                   = "healthz"
)

// methodPolicy is the complete authorization decision per method. Every
// served method must appear here; there is no default.
var methodPolicy = map[string]bool{
	MethodSignIn:                    false,
	MethodSignOut:                   true,
	MethodSignUp:                    false,
	MethodCheckUsernameAvailability: false,
	MethodCreatePost:                true,
	MethodGetPost:                   true,
	MethodGetPostStream:             true,
	MethodGetPosts:                  true,
	MethodGetMyPosts:                true,
	MethodEditPost:                  true,
	MethodDeletePost:                true,
	MethodSwapLikePost:              true,
	MethodHealthz:                   false,
}

// RequiresAuth returns the policy decision for method. Panicking on an
// unlisted method makes a route without an explicit decision fail at startup
// wiring instead of silently running unauthenticated.
func RequiresAuth(method string) bool {
	requires, ok := methodPolicy[method]
	if !ok {
		panic(fmt.Sprintf("no authorization policy registered for method %q", method))
	}
	return requires
}
