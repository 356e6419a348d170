package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multicodec"

	"ontograph.dev/datagate/entity"
	"ontograph.dev/datagate/envelope"
	"ontograph.dev/datagate/gate"
	"ontograph.dev/datagate/grpcgate"
	"ontograph.dev/datagate/storage"
	"ontograph.dev/datagate/storage/localfs"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "check":
		return cmdCheck(args[1:], out, errOut)
	case "wrap":
		return cmdWrap(args[1:], out, errOut)
	case "store":
		return cmdStore(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "datagate: validate serialized data fields of ontology entities")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  datagate check [--remote <addr>] <entity.json>")
	fmt.Fprintln(w, "  datagate wrap --codec <name> [-o <file>] <payload-file>")
	fmt.Fprintln(w, "  datagate store put --root <dir> <entity.json>")
	fmt.Fprintln(w, "  datagate store get --root <dir> <cid>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - entity.json is the kind-tagged entity encoding (see package entity)")
	fmt.Fprintln(w, "  - --codec takes a multicodec table name, e.g. cbor, json, protobuf")
	fmt.Fprintln(w, "  - check exits 0 when every data field validates, 1 otherwise")
}

func cmdCheck(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(errOut)
	remote := fs.String("remote", "", "validate against a datagated instance instead of in-process")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "check: exactly one entity file required")
		return 2
	}

	b, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	e, err := entity.Decode(b)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	var verr error
	if *remote != "" {
		client, err := grpcgate.Dial(*remote, grpcgate.DialOptions{Timeout: 5 * time.Second})
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		defer client.Close()
		verr = client.Check(e)
	} else {
		verr = gate.Validate(e)
	}

	if verr != nil {
		var ge *gate.Error
		if errors.As(verr, &ge) {
			fmt.Fprintf(out, "reject %s %s: %s\n", e.EntityKind(), ge.Kind, ge.Error())
		} else {
			fmt.Fprintf(out, "reject %s: %s\n", e.EntityKind(), verr)
		}
		return 1
	}
	fmt.Fprintf(out, "ok %s\n", e.EntityKind())
	return 0
}

func cmdWrap(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("wrap", flag.ContinueOnError)
	fs.SetOutput(errOut)
	var code multicodec.Code
	fs.Var(&code, "codec", "multicodec table name for the payload")
	outPath := fs.String("o", "", "write envelope to file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "wrap: exactly one payload file required")
		return 2
	}
	if code == 0 {
		fmt.Fprintln(errOut, "wrap: --codec is required")
		return 2
	}

	payload, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	wrapped := envelope.Wrap(code, payload)

	if *outPath != "" {
		if err := os.WriteFile(*outPath, wrapped, 0o644); err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		return 0
	}
	if _, err := out.Write(wrapped); err != nil {
		fmt.Fprintln(errOut, err)
		return 1
	}
	return 0
}

func cmdStore(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "store: put or get required")
		return 2
	}
	sub, args := args[0], args[1:]

	fs := flag.NewFlagSet("store "+sub, flag.ContinueOnError)
	fs.SetOutput(errOut)
	root := fs.String("root", "", "store root directory")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *root == "" {
		fmt.Fprintln(errOut, "store: --root is required")
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(errOut, "store %s: exactly one argument required\n", sub)
		return 2
	}

	cas, err := localfs.New(*root)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	store := &storage.EntityStore{CAS: cas}

	switch sub {
	case "put":
		b, err := os.ReadFile(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		e, err := entity.Decode(b)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		id, err := store.Put(e)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintln(out, id.String())
		return 0
	case "get":
		id, err := cid.Decode(fs.Arg(0))
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 2
		}
		e, err := store.Get(id)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		b, err := entity.Encode(e)
		if err != nil {
			fmt.Fprintln(errOut, err)
			return 1
		}
		fmt.Fprintln(out, string(b))
		return 0
	default:
		fmt.Fprintf(errOut, "store: unknown subcommand %s\n", sub)
		return 2
	}
}
