//go:build wireinject
// +build wireinject

package main

import (
	"tabfile/internal/app"

	"github.com/google/wire"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Conv   *app.Converter
}

// InitializeApp builds App (Config + Converter) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideConverter,
		wire.Struct(new(App), "Config", "Conv"),
	)
	return nil, nil
}
