// Package sdk is a Go client for the society API.
//
// Unauthenticated operations (Register, Login) return the session token that
// protected operations expect as their token argument:
//
//	c := sdk.NewClient("http://localhost:8080")
//	auth, err := c.Login(ctx, "ana@example.com", "secret")
//	if err != nil {
//		return err
//	}
//	me, err := c.GetUser(ctx, auth.Token, auth.ID)
//
// Non-2xx responses are returned as *APIError carrying the server message.
package sdk
