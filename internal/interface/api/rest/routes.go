package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth   = RouteApiV1 + "/auth"
	RouteSignup = RouteAuth + "/signup"
	RouteLogin  = RouteAuth + "/login"

	// account
	RouteAccount      = RouteApiV1 + "/account"
	RouteAccountPhoto = RouteAccount + "/photo"

	// drive
	RouteFiles        = RouteApiV1 + "/files"
	RouteFileStream   = RouteFiles + "/stream"
	RouteFile         = RouteFiles + "/:file_id"
	RouteFileTrash    = RouteFile + "/trash"
	RouteFileRestore  = RouteFile + "/restore"
	RouteFileDownload = RouteFile + "/download"

	// uploads
	RouteUploads      = RouteApiV1 + "/uploads"
	RouteUploadStatus = RouteUploads + "/:upload_id"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
