package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/unicorncodings/Ai-Photo-Studio/config"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/consts"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/gemini"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/ai/studio"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/display"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/modules/logs"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http"
	"github.com/unicorncodings/Ai-Photo-Studio/internal/service/http/handler"
	"github.com/unicorncodings/Ai-Photo-Studio/tools"
)

var (
	httpPort   string
	configPath string
)

const sweepInterval = time.Minute

func init() {
	flag.StringVar(&httpPort, "http-port", ":80", "listen http port")
	flag.StringVar(&configPath, "config", "config.yml", "config file path")
}

func main() {
	flag.Parse()
	config.Init(tools.PanicOnError(tools.ReadFile(configPath)))
	logs.InitLogger(config.GConfig.Log)
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	provider := tools.PanicOnError(gemini.NewProvider(ctx, config.GConfig.Gemini))
	registry := display.NewRegistry(consts.HandleURLPrefix)
	maxUpload := config.GConfig.HTTP.MaxUploadBytes()
	h := handler.New(studio.New(provider), registry, maxUpload)
	// the sweeper is the only path that reclaims handles of abandoned sessions
	h.Sessions().RunSweeper(ctx, wg, sweepInterval, config.GConfig.Display.TTL())

	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal, syscall.SIGINT, syscall.SIGTERM)
	go func(ch chan os.Signal) {
		<-ch
		cancel()
		wg.Wait()
		os.Exit(0)
	}(osSignal)
	logs.Logger.Info().Str("port", httpPort).Str("image_model", config.GConfig.ImageModel).
		Str("text_model", config.GConfig.TextModel).Msg("photo studio starting")
	http.Serve(httpPort, http.NewEngine(h, maxUpload))
}
