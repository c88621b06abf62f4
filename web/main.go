package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	webServer := server.NewServer(*port)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Visit http://localhost:%d to start rendering; Ctrl-C stops the server", *port)

	if err := webServer.Run(ctx); err != nil {
		log.Printf("Error running server: %v", err)
		os.Exit(1)
	}
	log.Printf("Server stopped")
}
