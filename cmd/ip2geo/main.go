// Command ip2geo queries an IP2Location or IP2Proxy binary database.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ip2geo/ip2geo"
)

var opts struct {
	JSON    bool
	Compact bool
	Strict  bool
	Verbose bool
}

var log = logrus.New()

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s db_path [ip_addr...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.BoolVar(&opts.JSON, "json", false, "use json output")
	flag.BoolVar(&opts.Compact, "compact", false, "compact output")
	flag.BoolVar(&opts.Strict, "strict", false, "fail immediately if a record is not found")
	flag.BoolVar(&opts.Verbose, "v", false, "log diagnostic information to stderr")
}

func main() {
	args, err := pparse(flag.CommandLine, os.Args)
	if err != nil || len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if opts.Verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	if err := lookup(args); err != nil {
		log.WithError(err).Error("fatal")
		os.Exit(1)
	}
}

func lookup(args []string) error {
	log.WithField("path", args[0]).Debug("opening database")
	db, err := ip2geo.Open(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	var enc *json.Encoder
	if opts.JSON {
		enc = json.NewEncoder(os.Stdout)
		if !opts.Compact {
			enc.SetIndent("", "  ")
		}
		enc.SetEscapeHTML(false)
	}

	if len(args) == 1 {
		info := fmt.Sprintf("%s (db_type %d, %d columns, %s)", productName(db.ProductKind()), db.DBType(), db.ColumnCount(), db.Version())
		if opts.JSON {
			return enc.Encode(info)
		}
		fmt.Println(info)
		return nil
	}

	for _, addr := range args[1:] {
		log.WithField("addr", addr).Debug("looking up")
		r, err := db.LookupString(addr)
		if err != nil {
			if opts.Strict {
				return fmt.Errorf("lookup %q: %w", addr, err)
			}
			log.WithField("addr", addr).WithError(err).Warn("lookup failed")
			continue
		}
		if opts.JSON {
			if err := enc.Encode(r); err != nil {
				return err
			}
		} else {
			printRecord(addr, r)
		}
	}
	return nil
}

func printRecord(addr string, r ip2geo.Record) {
	fmt.Printf("%s =>\n", addr)
	switch {
	case r.Location != nil:
		fmt.Printf("  country: %s (%s)\n", r.Location.CountryName, r.Location.CountryCode)
		if r.Location.Region != "" || r.Location.City != "" {
			fmt.Printf("  region:  %s / %s\n", r.Location.Region, r.Location.City)
		}
		if r.Location.Latitude != nil || r.Location.Longitude != nil {
			fmt.Printf("  coords:  %v, %v\n", derefF32(r.Location.Latitude), derefF32(r.Location.Longitude))
		}
	case r.Proxy != nil:
		fmt.Printf("  country: %s (%s)\n", r.Proxy.CountryName, r.Proxy.CountryCode)
		fmt.Printf("  proxy:   %s (%s)\n", r.Proxy.ProxyType, r.Proxy.IsProxy)
	}
}

func derefF32(f *float32) float32 {
	if f == nil {
		return 0
	}
	return *f
}

func productName(kind uint8) string {
	switch kind {
	case 1:
		return "IP2Location"
	case 2:
		return "IP2Proxy"
	default:
		return "unknown"
	}
}

// pparse parses argv into f, but flags after non-flag arguments, stopping if an
// argument is '--'. Grounded on pg9182/ip2x's cmd/ip2x/main.go pparse, which
// solves the same "db_path ip_addr... -json" ordering problem.
func pparse(f *flag.FlagSet, argv []string) (args []string, err error) {
	if err = f.Parse(argv[1:]); err != nil {
		return
	}
	for i := len(argv) - f.NArg() + 1; i < len(argv); {
		if i > 1 && argv[i-2] == "--" {
			break
		}
		args = append(args, f.Arg(0))

		if err = f.Parse(argv[i:]); err != nil {
			return
		}
		i += 1 + len(argv[i:]) - f.NArg()
	}
	return append(args, f.Args()...), nil
}
