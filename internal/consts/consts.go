package consts

const (
	RequestId = "request_id"

	ClientId = "Client-Id"
)
