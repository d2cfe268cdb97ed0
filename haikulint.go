package haikulint

import (
	"flag"
	"fmt"
	"go/ast"
	"reflect"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/sirkon/haikulint/internal/config"
	"github.com/sirkon/haikulint/internal/haiku"
	"github.com/sirkon/haikulint/internal/logging"
	"github.com/sirkon/haikulint/internal/report"
)

const doc = `haikulint checks that comments of poetic functions are haiku

A function is poetic when its name starts with a prefix ("poetic" by default)
or, depending on the -selector mode, when it prints a string literal containing
a marker ("poet" by default). The doc comment of a poetic function must have
exactly three lines of 5, 7 and 5 syllables.`

// Analyzer is the main entry point for the linter. It is configured with flags.
var Analyzer = newFlagAnalyzer()

// NewAnalyzer creates an analyzer bound to the given configuration.
func NewAnalyzer(cfg *config.Config) *analysis.Analyzer {
	c := *cfg
	return newAnalyzer(&runner{
		load: func() (*config.Config, error) {
			return &c, nil
		},
	})
}

func newAnalyzer(r *runner) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:       "haikulint",
		Doc:        doc,
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		Run:        r.run,
		ResultType: reflect.TypeOf([]report.Report(nil)),
	}
}

func newFlagAnalyzer() *analysis.Analyzer {
	var (
		configPath string
		prefix     string
		marker     string
		selector   config.SelectorMode
		requireDoc bool
		debug      bool
		overrides  config.OverrideTable
	)

	var a *analysis.Analyzer
	a = newAnalyzer(&runner{
		load: func() (*config.Config, error) {
			cfg := config.Default()
			if configPath != "" {
				var err error
				cfg, err = config.Load(configPath)
				if err != nil {
					return nil, err
				}
			}

			// Flags set explicitly win over the file.
			a.Flags.Visit(func(f *flag.Flag) {
				switch f.Name {
				case "prefix":
					cfg.Prefix = prefix
				case "marker":
					cfg.Marker = marker
				case "selector":
					cfg.Selector = selector
				case "require-doc":
					cfg.RequireDoc = requireDoc
				case "debug":
					cfg.Debug = debug
				}
			})
			for word, count := range overrides {
				if cfg.Overrides == nil {
					cfg.Overrides = config.OverrideTable{}
				}
				cfg.Overrides[word] = count
			}

			return cfg, nil
		},
	})

	a.Flags.StringVar(&configPath, "config", "", "path to a YAML configuration file")
	a.Flags.StringVar(&prefix, "prefix", config.DefaultPrefix, "name prefix of poetic functions")
	a.Flags.StringVar(&marker, "marker", config.DefaultMarker, "literal substring making a call poetic")
	a.Flags.Var(&selector, "selector", "poetic function selection: prefix, call, prefix-or-call or prefix-and-call")
	a.Flags.BoolVar(&requireDoc, "require-doc", false, "report poetic functions without doc comments")
	a.Flags.BoolVar(&debug, "debug", false, "log verdicts to stderr")
	a.Flags.Var(&overrides, "override", "word=count syllable override, can be repeated")

	return a
}

// runner builds the validation session once and checks packages with it.
type runner struct {
	load func() (*config.Config, error)

	once    sync.Once
	session *config.Session
	outputs *knownOutputFuncs
	log     *zap.Logger
	err     error
}

func (r *runner) init() error {
	r.once.Do(func() {
		cfg, err := r.load()
		if err != nil {
			r.err = fmt.Errorf("load haikulint config: %w", err)
			return
		}

		r.log = logging.OrNop(cfg.Debug)
		r.session, err = cfg.Session()
		if err != nil {
			r.err = fmt.Errorf("set up haiku validation: %w", err)
			return
		}
		r.outputs = newKnownOutputFuncs(r.session.OutputFuncs)

		r.log.Debug(
			"session ready",
			zap.String("prefix", cfg.Prefix),
			zap.String("marker", cfg.Marker),
			zap.Stringer("selector", cfg.Selector),
			zap.Bool("require-doc", cfg.RequireDoc),
			zap.Int("overrides", r.session.Overrides.Len()),
		)
	})

	return r.err
}

func (r *runner) run(pass *analysis.Pass) (any, error) {
	if err := r.init(); err != nil {
		return nil, err
	}

	pector := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
	}

	var rep report.Reporter
	pector.Preorder(nodeFilter, func(node ast.Node) {
		n := node.(*ast.FuncDecl) // No need to assert check since we only get func decls.

		r.checkFunc(pass, n, &rep)
	})

	reports := rep.Reports()
	for _, rp := range reports {
		pass.Report(analysis.Diagnostic{
			Pos:      rp.Pos,
			Category: rp.RuleCode.Code(),
			Message:  rp.Message,
		})
	}

	return reports, nil
}

// checkFunc validates doc comments of the function.
func (r *runner) checkFunc(pass *analysis.Pass, fn *ast.FuncDecl, rep *report.Reporter) {
	block := commentBlock(fn.Doc)
	if len(block) == 0 && !r.session.RequireDoc {
		return
	}

	def := haiku.Definition{
		Name: fn.Name.Name,
		Kind: haiku.DefinitionKindFunction,
		Pos:  fn.Pos(),
		Body: &bodyInspector{
			info:    pass.TypesInfo,
			body:    fn.Body,
			outputs: r.outputs,
		},
	}
	if fn.Recv != nil {
		def.Kind = haiku.DefinitionKindMethod
	}

	verdict := r.session.Validator.Validate(def, block)
	r.log.Debug(
		"haiku verdict",
		zap.String("package", pass.Pkg.Path()),
		zap.String("definition", def.Name),
		zap.Stringer("outcome", verdict.Outcome),
		zap.Stringer("stage", verdict.Stage),
		zap.Ints("syllables", verdict.Syllables),
	)

	if !verdict.Failed() {
		return
	}

	rep.Report(report.Report{
		RuleCode:   verdict.Rule,
		Pos:        def.Pos,
		Definition: def.Name,
		Message:    verdict.Message,
		Syllables:  verdict.Syllables,
	})
}
