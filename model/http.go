package model

type SolveRequestBody struct {
	Input SolverInput `json:"input"`
}

type FrequenciesResponse struct {
	Frequencies []float64 `json:"frequencies"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type RpcRequest struct {
	Jsonrpc string                 `json:"jsonrpc"`
	Id      int                    `json:"id"`
	Method  string                 `json:"method"`
	Params  map[string]interface{} `json:"params"`
}

type RpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type RpcResponse struct {
	Jsonrpc string      `json:"jsonrpc"`
	Id      int         `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RpcError   `json:"error,omitempty"`
}
