package main

import (
	"log"
	"net"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

func main() {
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Printf("fatal: %s", err)
		os.Exit(1)
	}
}

func run() error {
	args, err := getArgs()
	if err != nil {
		return errors.Wrap(err, "unable to parse arguments")
	}

	cfg, err := LoadOrCreateConfig(args.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "unable to load configuration")
	}

	server := NewServer(cfg)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(int(cfg.Port)))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, "unable to listen on %s", addr)
	}
	defer func() { _ = listener.Close() }()

	log.Printf("listening on %s", addr)

	go server.Run()

	acceptLoop(server, listener)

	return nil
}

// acceptLoop accepts connections forever, handing each to a new
// ClientWorker. Accept errors are logged and the listener continues, per
// spec.md §7.
func acceptLoop(server *Server, listener net.Listener) {
	var nextClientID uint64

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("accept: %s", err)
			continue
		}

		nextClientID++
		worker := NewClientWorker(nextClientID, conn, server.Events())
		go worker.Run()
	}
}
