package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"ontograph.dev/datagate/grpcgate"
)

func main() {
	fs := flag.NewFlagSet("datagated", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7711", "listen address")
	_ = fs.Parse(os.Args[1:])

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	grpcgate.RegisterGateServer(s, &grpcgate.Server{})

	fmt.Fprintf(os.Stderr, "datagated listening on %s\n", lis.Addr().String())
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
