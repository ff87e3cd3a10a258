package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth      = RouteApiV1 + "/auth"
	RouteAuthToken = RouteAuth + "/token"

	RouteFiles        = RouteApiV1 + "/files"
	RouteFile         = RouteFiles + "/:file_id"
	RouteFileUpload   = RouteFiles + "/upload"
	RouteFileRename   = RouteFile + "/rename"
	RouteFileDownload = RouteFile + "/download"

	RouteFolders = RouteApiV1 + "/folders"
	RouteFolder  = RouteFolders + "/:folder_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
