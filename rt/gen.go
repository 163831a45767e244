package rt

//go:generate go run ./internal/gentuple -o tuple.go
