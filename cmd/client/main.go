package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/ar-fit/internal/cli"
	"github.com/MKhiriev/ar-fit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	stop()

	os.Exit(code)
}
