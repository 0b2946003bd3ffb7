package main

import (
	"context"
	"flag"
	"log"

	"terraform-provider-pleasant/internal/provider"
	"terraform-provider-pleasant/internal/telemetry"

	"github.com/hashicorp/terraform-plugin-framework/providerserver"
)

// version is set by the goreleaser configuration on release builds.
var version = "dev"

func main() {
	var debug bool

	flag.BoolVar(&debug, "debug", false, "set to true to run the provider with support for debuggers like delve")
	flag.Parse()

	telemetry.VERSION = version

	opts := providerserver.ServeOpts{
		Address: "registry.terraform.io/tombosmansibm/pleasant",
		Debug:   debug,
	}

	if err := providerserver.Serve(context.Background(), provider.New(version), opts); err != nil {
		log.Fatal(err.Error())
	}
}
