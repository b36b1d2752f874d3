// Command huffzipd serves the compression API over HTTP.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/indigo"

	"github.com/rickm/huffzip/httpserver"
	"github.com/rickm/huffzip/service"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	capacity := flag.Int("registry-capacity", service.DefaultRegistryCapacity,
		"maximum number of retained operation records")
	flag.Parse()

	svc := service.New(service.WithRegistryCapacity(*capacity))
	srv := httpserver.New(svc)

	app := indigo.New(*addr)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("shutting down")
		app.Stop()
	}()

	log.Printf("huffzipd listening on %s", *addr)
	if err := app.Serve(srv.Router()); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
