package handlers

// HandlerBundle aggregates every handler the router mounts.
type HandlerBundle struct {
	Auth *AuthHandler

	// Admin resource endpoints, one handler per kind over the shared
	// lifecycle service.
	Services      *ResourceHandler
	SupportModels *ResourceHandler

	// Public read-only mirrors.
	PublicServices      *PublicResourceHandler
	PublicSupportModels *PublicResourceHandler

	Banners *BannerHandler
	Site    *SiteHandler
}
