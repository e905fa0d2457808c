// Package rpc holds the generated Accounts service messages and stubs.
package rpc

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/dmitrijs2005/devconnector --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/devconnector devconnector/accounts/v1/accounts.proto
