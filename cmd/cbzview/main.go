package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/nogoegst/byteqr"
	cbzview "github.com/unkaktus/cbzview/lib"
	"rsc.io/qr"
)

var debug bool

func main() {
	var debugFlag = flag.Bool("debug", false,
		"Show what's happening")
	var openFlag = flag.Bool("open", false,
		"Open web browser")
	var qrFlag = flag.Bool("qr", false,
		"Print link in QR code to stdout")
	var port int
	flag.IntVar(&port, "port", 0,
		"Port to serve on (default: random port)")
	flag.IntVar(&port, "p", 0,
		"Port to serve on (shorthand)")
	flag.Parse()

	debug = *debugFlag
	paramsCh := make(chan cbzview.Parameters)
	linkChan := make(chan url.URL)
	errChan := make(chan error)
	shutdownCh := make(chan struct{})

	go func() {
		p := <-paramsCh
		go func() {
			errChan <- cbzview.Serve(p, linkChan)
		}()
	}()

	if len(flag.Args()) == 0 {
		guiMain(paramsCh, linkChan, errChan)
	} else {
		if len(flag.Args()) != 1 {
			log.Fatalf("You should specify exactly one cbz file")
		}
		paramsCh <- cbzview.Parameters{
			Debug:    debug,
			Path:     flag.Args()[0],
			Port:     port,
			Shutdown: shutdownCh,
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case link := <-linkChan:
				linkString := link.String()
				if *qrFlag {
					byteqr.Write(os.Stdout, linkString, qr.L, nil, nil)
				}
				fmt.Printf("Server running on %s\n", linkString)
				fmt.Println("Press Ctrl+C to stop server")
				if *openFlag {
					fmt.Println("Opening web browser...")
					if err := openBrowser(linkString); err != nil {
						log.Printf("Unable to open browser: %v", err)
					}
				}

			case <-sigChan:
				fmt.Println("\nShutting down server...")
				close(shutdownCh)
				// Further interrupts are ignored while draining.
				sigChan = nil

			case err := <-errChan:
				if err != nil {
					log.Fatal(err)
				}
				fmt.Println("Server stopped.")
				return
			}
		}
	}
}
