package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/BasixKOR/numconv/bigint"
	"github.com/BasixKOR/numconv/dragon4"
	"github.com/BasixKOR/numconv/internal/config"
)

const buildVersion = "1.0.0"

var (
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	radix       = flag.Int("radix", 0, "output radix, 2-36 (0: use config/default)")
	configPath  = flag.String("config", "", "path to a YAML defaults file")
	showVersion = flag.String("version", "", "print the build version if it satisfies this semver constraint, then exit")
)

// readNumbers reads one float64 per line from r, skipping blank lines.
func readNumbers(r io.Reader) ([]float64, error) {
	var vals []float64
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		vals = append(vals, v)
	}
	return vals, sc.Err()
}

func run() error {
	d, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *radix != 0 {
		d.Radix = *radix
	}

	args := flag.Args()
	var src io.Reader
	if len(args) == 0 || args[0] == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	vals, err := readNumbers(src)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for _, v := range vals {
		opts := []dragon4.Option{dragon4.WithRoundToEven(d.RoundToEven)}
		fmt.Fprintln(w, dragon4.Format(v, d.Radix, opts...))
	}
	return nil
}

func printVersionIfSatisfies(constraint string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid -version constraint %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(buildVersion)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("build version %s does not satisfy %q", buildVersion, constraint)
	}
	fmt.Println(buildVersion)
	return nil
}

// runRecoveringContractErrors calls run and turns a *bigint.ContractError
// panic -- the only panic dragon4/bigint raise deliberately -- into an
// ordinary error, re-panicking anything else.
func runRecoveringContractErrors() (err error) {
	defer func() {
		if x := recover(); x != nil {
			if ce, ok := x.(*bigint.ContractError); ok {
				err = ce
				return
			}
			panic(x)
		}
	}()
	return run()
}

func main() {
	defer func() {
		if x := recover(); x != nil {
			log.Printf("%v\n%s", x, debug.Stack())
			panic(x)
		}
	}()
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *showVersion != "" {
		if err := printVersionIfSatisfies(*showVersion); err != nil {
			fmt.Println(err)
			os.Exit(64)
		}
		return
	}

	if err := runRecoveringContractErrors(); err != nil {
		switch err := err.(type) {
		case *bigint.ContractError:
			fmt.Println("contract violation:", err)
		default:
			fmt.Println(err)
		}
		os.Exit(64)
	}
}
