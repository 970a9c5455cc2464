package dto

type ResolveRouteRequest struct {
	Path string `query:"path" validate:"required"`
}
