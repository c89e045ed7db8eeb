// Package driver orchestrates one end-to-end run of the simulator: pick
// an offspring law, sample a balls-in-boxes profile, optionally build the
// tree/looptree/centrality outputs it implies, and write whichever
// outputs the caller asked for. Ported from
// _examples/original_source/src/grant.c::main and
// _examples/original_source/src/rand/sgwtree.h::gwtree (simulate mode),
// and src/io/rfile.h::rfile (read-from-file mode).
package driver

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sync"

	"github.com/benediktstufler/grant/internal/binb"
	"github.com/benediktstufler/grant/internal/centrality"
	"github.com/benediktstufler/grant/internal/graph"
	"github.com/benediktstufler/grant/internal/graphml"
	"github.com/benediktstufler/grant/internal/looptree"
	"github.com/benediktstufler/grant/internal/output"
	"github.com/benediktstufler/grant/internal/rng"
	"github.com/benediktstufler/grant/internal/treegen"
	"github.com/benediktstufler/grant/internal/weight"
	apperrors "github.com/benediktstufler/grant/pkg/errors"
	"github.com/benediktstufler/grant/pkg/parallel"
	"github.com/benediktstufler/grant/pkg/utils"
)

// Method selects between simulating a fresh tree and reading an existing
// graph from a file, mirroring cmdarg.method.
type Method int

const (
	// MethodSimulate samples a size-conditioned Galton-Watson tree.
	MethodSimulate Method = 1
	// MethodReadFile loads an existing graph from a GraphML file.
	MethodReadFile Method = 2
)

// Law selects which offspring-weight provider to use in MethodSimulate,
// mirroring the Tbeta/Tgamma/Tpoisson/Ttria exclusivity in gwtree.
type Law int

const (
	LawNone Law = iota
	LawPowerLaw
	LawCauchy
	LawPoisson
	LawTriangulation
)

// OutputOpt is one optional output destination: Requested is false when
// the user never mentioned this output at all; when Requested is true,
// Path == "" means "write to stdout" exactly as the source's fopen-or-
// stdout convention does.
type OutputOpt struct {
	Requested bool
	Path      string
}

// Options collects every run parameter, corresponding to struct cmdarg.
type Options struct {
	Size    int
	Num     int
	Threads int
	Seed    uint64
	RandGen rng.Family
	Prec    uint

	Method Method
	Law    Law
	Beta   float64
	Gamma  float64
	Mu     float64

	OutFile     OutputOpt
	LoopFile    OutputOpt
	DegFile     OutputOpt
	HeightFile  OutputOpt
	ProfileFile OutputOpt
	CentFile    OutputOpt

	InFile string
	Vertex string // optional string id of the root vertex in MethodReadFile
}

// Run executes one full invocation of the simulator against opts,
// logging phase boundaries through log.
func Run(opts Options, log utils.Logger) error {
	if opts.Method == MethodReadFile {
		return runReadFile(opts, log)
	}
	return runSimulate(opts, log)
}

func runSimulate(opts Options, log utils.Logger) error {
	if opts.Size <= 0 {
		return apperrors.New(apperrors.CodeConfigError, "size must be positive")
	}
	if opts.Num <= 0 {
		return apperrors.New(apperrors.CodeConfigError, "num must be at least 1")
	}
	if opts.Threads <= 0 {
		return apperrors.New(apperrors.CodeConfigError, "threads must be at least 1")
	}
	prec := opts.Prec
	if prec == 0 {
		prec = weight.DefaultPrecision
	}

	provider, err := resolveLaw(opts)
	if err != nil {
		return err
	}

	needTree := opts.OutFile.Requested || opts.LoopFile.Requested ||
		opts.DegFile.Requested || opts.HeightFile.Requested || opts.CentFile.Requested

	// one independent generator per worker thread, seeded seed+i exactly
	// as grant.c's main() seeds one gsl_rng per thread.
	rngs := make([]*rand.Rand, opts.Threads)
	for i := 0; i < opts.Threads; i++ {
		r, err := rng.New(opts.RandGen, opts.Seed+uint64(i))
		if err != nil {
			return apperrors.Wrap(apperrors.CodeConfigError, "building random generator", err)
		}
		rngs[i] = r
	}

	timer := utils.NewTimer("grant run", utils.WithLogger(log))

	var q []float64
	if opts.Law != LawPoisson {
		log.Info("building offspring weight vector: n=%d prec=%d", opts.Size, prec)
		pt := timer.Start("weight-vector")
		vec, err := weight.Build(provider, opts.Size, prec)
		if err != nil {
			return err
		}
		q, err = vec.Preprocess()
		pt.Stop()
		if err != nil {
			return err
		}
	}

	multi := opts.Num > 1

	for counter := 1; counter <= opts.Num; counter++ {
		if err := runOneSample(opts, log, timer, rngs, q, needTree, multi, counter); err != nil {
			return err
		}
	}

	log.Debug("%s", timer.Summary())
	return nil
}

// runOneSample draws one balls-in-boxes profile (and, if any tree-derived
// output was requested, expands it into a tree) and writes every output
// file the caller asked for, timing the whole sample as one phase of the
// run-level timer.
func runOneSample(opts Options, log utils.Logger, timer *utils.Timer, rngs []*rand.Rand, q []float64, needTree, multi bool, counter int) error {
	log.Info("sample %d/%d: sampling balls-in-boxes profile", counter, opts.Num)
	pt := timer.Start(fmt.Sprintf("sample-%d", counter))
	defer pt.Stop()

	var profile binb.Profile
	if opts.Law == LawPoisson {
		profile = binb.SamplePoisson(opts.Size, opts.Size-1, rngs[0])
	} else {
		profiles := binb.NewScheduler(opts.Threads).Run(opts.Size, opts.Size-1, q, rngs, 1)
		if len(profiles) != 1 {
			return apperrors.New(apperrors.CodeThreadError, "balls-in-boxes sampler returned no profile")
		}
		profile = profiles[0]
	}

	if opts.ProfileFile.Requested {
		if err := writeOutput(opts.ProfileFile, counter, opts.Num, multi, func(w io.Writer) error {
			return output.WriteDegProfile(w, profile)
		}); err != nil {
			return err
		}
	}

	if !needTree {
		return nil
	}

	d := treegen.ExpandProfile(profile, opts.Size, rngs[0])
	treegen.CyclicShift(d)
	g := treegen.BuildDFS(d)

	if opts.CentFile.Requested {
		centrality.Compute(g, 0, len(g.Vertices), opts.Threads)
	}

	var artifacts []func() error
	if opts.OutFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.OutFile, counter, opts.Num, multi, func(w io.Writer) error {
				return graphml.Write(w, g)
			})
		})
	}
	if opts.LoopFile.Requested {
		artifacts = append(artifacts, func() error {
			h := looptree.Build(g, g.Root)
			return writeOutput(opts.LoopFile, counter, opts.Num, multi, func(w io.Writer) error {
				return graphml.Write(w, h)
			})
		})
	}
	if opts.DegFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.DegFile, counter, opts.Num, multi, func(w io.Writer) error {
				return output.WriteIntSeq(w, g.DegreeSequence())
			})
		})
	}
	if opts.HeightFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.HeightFile, counter, opts.Num, multi, func(w io.Writer) error {
				return output.WriteIntSeq(w, g.HeightSequence())
			})
		})
	}
	if opts.CentFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.CentFile, counter, opts.Num, multi, func(w io.Writer) error {
				return output.WriteCent(w, normalizedCentrality(g))
			})
		})
	}

	return runArtifactWrites(artifacts)
}

// runArtifactWrites fans the requested output files for one sample out
// across pkg/parallel's worker pool: each artifact reads g (and, for
// CentFile, the already-computed Cent field) but writes to its own file,
// so the writes have no data dependency on one another.
func runArtifactWrites(artifacts []func() error) error {
	if len(artifacts) == 0 {
		return nil
	}
	_, err := parallel.ForEach(context.Background(), artifacts, parallel.DefaultPoolConfig(),
		func(ctx context.Context, fn func() error) error {
			return fn()
		})
	return err
}

func runReadFile(opts Options, log utils.Logger) error {
	if opts.InFile == "" {
		return apperrors.New(apperrors.CodeConfigError, "infile is required in read-from-file mode")
	}

	f, err := os.Open(opts.InFile)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeIOError, "opening input file", err)
	}
	defer f.Close()

	res, err := graphml.Read(f)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeIOError, "parsing graphml input", err)
	}
	if res.MultipleGraphs {
		log.Warn("input file contains more than one <graph> element; only the first is used")
	}

	g := res.Graph
	if len(g.Vertices) == 0 {
		return nil
	}

	root := 0
	if opts.Vertex != "" {
		id, ok := res.IDs[opts.Vertex]
		if !ok {
			return apperrors.New(apperrors.CodeConfigError, fmt.Sprintf("vertex id %q not found in input graph", opts.Vertex))
		}
		root = id
	}
	g.Root = root

	_, disconnected := g.BFS(root)
	if disconnected {
		return apperrors.New(apperrors.CodeTopologyError, "graph from input file is disconnected")
	}

	if opts.LoopFile.Requested && g.NumEdges() != len(g.Vertices)-1 {
		return apperrors.New(apperrors.CodeTopologyError, "input graph is not a tree: cannot construct loop tree")
	}

	if opts.CentFile.Requested {
		centrality.Compute(g, 0, len(g.Vertices), opts.Threads)
	}

	var artifacts []func() error
	if opts.DegFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.DegFile, 1, 1, false, func(w io.Writer) error {
				return output.WriteIntSeq(w, g.DegreeSequence())
			})
		})
	}
	if opts.ProfileFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.ProfileFile, 1, 1, false, func(w io.Writer) error {
				return output.WriteDegProfile(w, g.DegreeProfile())
			})
		})
	}
	if opts.HeightFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.HeightFile, 1, 1, false, func(w io.Writer) error {
				return output.WriteIntSeq(w, g.HeightSequence())
			})
		})
	}
	if opts.CentFile.Requested {
		artifacts = append(artifacts, func() error {
			return writeOutput(opts.CentFile, 1, 1, false, func(w io.Writer) error {
				return output.WriteCent(w, normalizedCentrality(g))
			})
		})
	}
	if opts.LoopFile.Requested {
		artifacts = append(artifacts, func() error {
			h := looptree.Build(g, g.Root)
			return writeOutput(opts.LoopFile, 1, 1, false, func(w io.Writer) error {
				return graphml.Write(w, h)
			})
		})
	}

	return runArtifactWrites(artifacts)
}

func resolveLaw(opts Options) (weight.Provider, error) {
	switch opts.Law {
	case LawPowerLaw:
		if opts.Beta <= 2.0 {
			return nil, apperrors.New(apperrors.CodeConfigError, "please specify a sensible value beta > 2.0")
		}
		if opts.Mu <= 0.0 {
			return nil, apperrors.New(apperrors.CodeConfigError, "please specify a sensible value mu > 0")
		}
		return weight.PowerLaw{Beta: opts.Beta, Mu: opts.Mu}, nil
	case LawCauchy:
		if opts.Gamma <= 1.0 {
			return nil, apperrors.New(apperrors.CodeConfigError, "please specify a sensible value gamma > 1.0")
		}
		if opts.Mu <= 0.0 {
			return nil, apperrors.New(apperrors.CodeConfigError, "please specify a sensible value mu > 0")
		}
		return weight.Cauchy{Gamma: opts.Gamma, Mu: opts.Mu}, nil
	case LawPoisson:
		return weight.Poisson{}, nil
	case LawTriangulation:
		return weight.Triangulation{}, nil
	default:
		return nil, apperrors.New(apperrors.CodeConfigError,
			"please specify a branching mechanism (--beta or --gamma, or the Poisson or triangulation law)")
	}
}

// stdoutMu serializes the rare case of two requested outputs both resolving
// to stdout (an empty OutputOpt.Path) and racing to write to it concurrently
// from runArtifactWrites' worker pool.
var stdoutMu sync.Mutex

func writeOutput(opt OutputOpt, counter, num int, multi bool, fn func(io.Writer) error) error {
	name, err := output.ConvName(opt.Path, counter, num, multi)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeConfigError, "resolving output filename", err)
	}

	var w io.Writer = os.Stdout
	if name != "" {
		f, err := os.Create(name)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeIOError, "opening output file "+name, err)
		}
		defer f.Close()
		w = f
	} else {
		stdoutMu.Lock()
		defer stdoutMu.Unlock()
	}

	if err := fn(w); err != nil {
		return apperrors.Wrap(apperrors.CodeIOError, "writing output", err)
	}
	return nil
}

func normalizedCentrality(g *graph.Graph) []float64 {
	n := float64(len(g.Vertices) - 1)
	out := make([]float64, len(g.Vertices))
	for i, v := range g.Vertices {
		if v.Cent == 0 {
			out[i] = 0
			continue
		}
		out[i] = n / float64(v.Cent)
	}
	return out
}
