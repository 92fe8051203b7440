// Package proto holds the gRPC contract for the LLM sidecar. The Go
// bindings are generated, not committed.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
