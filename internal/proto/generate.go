// Package proto holds the generated unsaid.v1.Diary messages and service.
package proto

//go:generate protoc -I ../../api/proto --go_out=. --go_opt=module=github.com/dmitrijs2005/unsaid/internal/proto --go-grpc_out=. --go-grpc_opt=module=github.com/dmitrijs2005/unsaid/internal/proto unsaid/v1/diary.proto
