package main

import (
	"context"
	"io"

	"github.com/EmmerichFrog/bt-home-remote/internal/config"
	"github.com/EmmerichFrog/bt-home-remote/internal/exit"
	"github.com/EmmerichFrog/bt-home-remote/internal/jsontok"
	"github.com/EmmerichFrog/bt-home-remote/internal/logging"
	"github.com/EmmerichFrog/bt-home-remote/internal/lookup"
	"github.com/EmmerichFrog/bt-home-remote/internal/output"
	"github.com/EmmerichFrog/bt-home-remote/internal/random"
	"github.com/EmmerichFrog/bt-home-remote/internal/settings"
	"github.com/EmmerichFrog/bt-home-remote/internal/storage"
)

type app struct {
	cfg      *config.Config
	logger   logging.Logger
	parse    []jsontok.Option
	resolver *lookup.Resolver
	file     *storage.File
	store    *settings.Store
	printer  *output.Printer
	bits     random.Bits
	source   random.Source
}

func newApp(cfg *config.Config, stdout, stderr io.Writer) (*app, *exit.Result) {
	file, err := storage.New(cfg.File, cfg.Buffer)
	if err != nil {
		return nil, exit.Errorf("Error: %v\n", err)
	}

	logger := logging.NewText(stderr, cfg.Debug)

	resolverOpts := []lookup.Option{lookup.WithLogger(logger)}
	var parse []jsontok.Option
	if cfg.Strict {
		resolverOpts = append(resolverOpts, lookup.WithStrict())
		parse = append(parse, jsontok.WithStrict())
	}
	resolver := lookup.New(resolverOpts...)

	decoder := settings.NewDecoder(
		settings.WithResolver(resolver),
		settings.WithDecoderLogger(logger),
		settings.WithBudget(cfg.Tokens),
	)

	store := settings.NewStore(file, cfg.DeviceName,
		settings.WithDecoder(decoder),
		settings.WithStoreLogger(logger),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		parse:    parse,
		resolver: resolver,
		file:     file,
		store:    store,
		printer:  output.New(stdout, cfg.Format),
		source:   random.Default(),
	}, nil
}

func (a *app) execute(ctx context.Context) *exit.Result {
	switch a.cfg.Command {
	case config.CommandGet:
		return a.get(a.cfg.Args[0])
	case config.CommandElement:
		index, err := a.cfg.Index()
		if err != nil {
			return exit.Errorf("Error: %v\n", err)
		}
		return a.element(a.cfg.Args[0], index)
	case config.CommandElements:
		return a.elements(a.cfg.Args[0])
	case config.CommandCount:
		return a.count()
	case config.CommandTokens:
		return a.tokens()
	case config.CommandShow:
		return a.show()
	case config.CommandSet:
		return a.set(ctx, a.cfg.Args[0], a.cfg.Args[1])
	case config.CommandInit:
		return a.initialize(ctx)
	default:
		return exit.Errorf("Error: %v: %s\n", config.ErrUnknownCommand, a.cfg.Command)
	}
}

// document reads the bounded settings buffer.
func (a *app) document() ([]byte, *exit.Result) {
	doc, err := a.file.Read()
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, exit.Errorf("Error: settings file %s does not exist\n", a.file.Path())
		}
		return nil, exit.Errorf("Error: %v\n", err)
	}
	return doc, nil
}

func (a *app) get(key string) *exit.Result {
	doc, res := a.document()
	if res != nil {
		return res
	}

	value, ok := a.resolver.Get(key, doc, a.cfg.Tokens)
	if !ok {
		return exit.Errorf("Error: key %q not found\n", key)
	}
	return a.printed(a.printer.Value(key, value))
}

func (a *app) element(key string, index int) *exit.Result {
	doc, res := a.document()
	if res != nil {
		return res
	}

	value, ok := a.resolver.GetArrayElement(key, index, doc, a.cfg.Tokens)
	if !ok {
		return exit.Errorf("Error: no element %d in array %q\n", index, key)
	}
	return a.printed(a.printer.Element(key, index, value))
}

func (a *app) elements(key string) *exit.Result {
	doc, res := a.document()
	if res != nil {
		return res
	}

	values, ok := a.resolver.GetArrayElements(key, doc, a.cfg.Tokens)
	if !ok {
		return exit.Errorf("Error: no array %q\n", key)
	}
	return a.printed(a.printer.Elements(key, values))
}

func (a *app) count() *exit.Result {
	doc, res := a.document()
	if res != nil {
		return res
	}

	n, err := jsontok.Count(doc, a.parse...)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	return a.printed(a.printer.Count(n))
}

func (a *app) tokens() *exit.Result {
	doc, res := a.document()
	if res != nil {
		return res
	}

	tokens, err := a.resolver.Tokens(doc, a.cfg.Tokens)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	return a.printed(a.printer.Tokens(doc, tokens))
}

func (a *app) show() *exit.Result {
	s, err := a.store.Load()
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	var addr settings.Address
	a.bits, addr = s.Address(a.bits, a.source)
	return a.printed(a.printer.Settings(s, addr))
}

func (a *app) set(ctx context.Context, key, value string) *exit.Result {
	s, err := a.store.Load()
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	s, err = s.Set(key, value)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}

	written, err := a.store.Save(ctx, s)
	if err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	if !written {
		a.logger.Info("settings unchanged", "key", key)
	}

	var addr settings.Address
	a.bits, addr = s.Address(a.bits, a.source)
	return a.printed(a.printer.Settings(s, addr))
}

func (a *app) initialize(ctx context.Context) *exit.Result {
	if a.file.Exists() {
		return exit.Success("settings file " + a.file.Path() + " already exists\n")
	}

	if _, err := a.store.Save(ctx, settings.Defaults(a.cfg.DeviceName)); err != nil {
		return exit.Errorf("Error: %v\n", err)
	}
	return exit.Success("wrote default settings to " + a.file.Path() + "\n")
}

func (a *app) printed(err error) *exit.Result {
	if err != nil {
		return exit.Errorf("Error: failed to write output: %v\n", err)
	}
	return nil
}
