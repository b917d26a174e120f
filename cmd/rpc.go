package cmd

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/adaptune/temper/constants"
	"github.com/adaptune/temper/model"
	"github.com/adaptune/temper/solver"
	"github.com/adaptune/temper/tuning"
)

// JSON-RPC 2.0 bridge, same surface the plugin WebView speaks.

func rpcError(id, code int, msg string) model.RpcResponse {
	return model.RpcResponse{
		Jsonrpc: "2.0",
		Id:      id,
		Error:   &model.RpcError{Code: code, Message: msg},
	}
}

func rpcResult(id int, result interface{}) model.RpcResponse {
	return model.RpcResponse{
		Jsonrpc: "2.0",
		Id:      id,
		Result:  result,
	}
}

func rpcInput(params map[string]interface{}) (model.SolverInput, error) {
	var input model.SolverInput
	raw, err := json.Marshal(params["input"])
	if err != nil {
		return input, err
	}
	if err := json.Unmarshal(raw, &input); err != nil {
		return input, err
	}
	return applyDefaults(input), nil
}

func dispatchRpc(req model.RpcRequest) model.RpcResponse {
	switch req.Method {
	case "tuning.solve":
		input, err := rpcInput(req.Params)
		if err != nil {
			return rpcError(req.Id, -32603, "Internal error: "+err.Error())
		}
		res, err := solver.Run(input)
		if err != nil {
			return rpcError(req.Id, -32603, "Internal error: "+err.Error())
		}
		return rpcResult(req.Id, res)
	case "tuning.frequencies":
		input, err := rpcInput(req.Params)
		if err != nil {
			return rpcError(req.Id, -32603, "Internal error: "+err.Error())
		}
		res, err := solver.Run(input)
		if err != nil {
			return rpcError(req.Id, -32603, "Internal error: "+err.Error())
		}
		freqs := tuning.NotesToFrequencies(res.NotesCents, input.BaseFrequencyHz)
		return rpcResult(req.Id, model.FrequenciesResponse{Frequencies: freqs})
	case "getState":
		return rpcResult(req.Id, map[string]interface{}{
			"pitchBendRange": tuning.DefaultPitchBendRange,
			"cycleCents":     constants.NominalCycleCents,
		})
	default:
		return rpcError(req.Id, -32601, "Method not found: "+req.Method)
	}
}

func handleRpc(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		json.NewEncoder(w).Encode(rpcError(0, -32700, "Parse error"))
		return
	}

	var req model.RpcRequest
	if err := json.Unmarshal(reqBody, &req); err != nil {
		json.NewEncoder(w).Encode(rpcError(0, -32700, "Parse error"))
		return
	}
	if req.Method == "" {
		json.NewEncoder(w).Encode(rpcError(req.Id, -32600, "Invalid request: missing method"))
		return
	}

	json.NewEncoder(w).Encode(dispatchRpc(req))
}
