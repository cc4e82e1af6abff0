// @title           bookmarkd API
// @version         1.0
// @description     Bookmark management service guarded by a static bearer token.
// @BasePath        /
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the configured service token.
package api
