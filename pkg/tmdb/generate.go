package tmdb

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen --config=config.yaml ../../tmdb.schema.json
//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/tmdb.go github.com/kasuboski/vodz/pkg/tmdb ITmdb
