package batch

import (
	"time"

	"github.com/rs/zerolog"

	"polyroots/internal/domain"
	"polyroots/internal/interp"
	"polyroots/internal/poly"
	"polyroots/internal/solve"
)

// Runner executes problems and records outcomes in the workspace.
type Runner struct {
	polys domain.PolynomialStore
	runs  domain.RunStore
	log   zerolog.Logger
}

func NewRunner(polys domain.PolynomialStore, runs domain.RunStore, log zerolog.Logger) *Runner {
	return &Runner{polys: polys, runs: runs, log: log}
}

// Run executes every problem, appends a run record named after source, and
// returns the per-problem results. Individual problem failures land in the
// result's Err field rather than aborting the batch.
func (r *Runner) Run(source string, problems []domain.Problem) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(problems))
	for _, p := range problems {
		res := r.runOne(p)
		if res.Err != "" {
			r.log.Warn().Str("problem", p.Name).Str("kind", string(p.Kind)).
				Str("error", res.Err).Msg("problem failed")
		} else {
			r.log.Debug().Str("problem", p.Name).Str("kind", string(p.Kind)).
				Msg("problem solved")
		}
		results = append(results, res)
	}

	rec := domain.RunRecord{At: time.Now().UTC(), Source: source, Results: results}
	if err := r.runs.AppendRun(rec); err != nil {
		return results, err
	}
	return results, nil
}

func (r *Runner) runOne(p domain.Problem) domain.Result {
	res := domain.Result{Name: p.Name, Kind: p.Kind}

	fail := func(err error) domain.Result {
		res.Err = err.Error()
		return res
	}

	if p.Save != "" && len(p.Coefficients) > 0 {
		if err := r.polys.SavePolynomial(p.Save, p.Coefficients); err != nil {
			return fail(err)
		}
	}

	switch p.Kind {
	case domain.KindEval:
		pn, err := poly.Build(p.Coefficients)
		if err != nil {
			return fail(err)
		}
		v := pn.Eval(*p.At)
		res.Value = &v

	case domain.KindDerivs:
		pn, err := poly.Build(p.Coefficients)
		if err != nil {
			return fail(err)
		}
		res.Derivatives = pn.EvalDerivs(*p.At, p.Derivatives)

	case domain.KindSolve:
		pn, err := poly.Build(p.Coefficients)
		if err != nil {
			return fail(err)
		}
		roots, err := solve.Real(pn)
		if err != nil {
			return fail(err)
		}
		res.Roots = roots

	case domain.KindSolveComplex:
		pn, err := poly.Build(p.Coefficients)
		if err != nil {
			return fail(err)
		}
		roots, err := solve.Complex(pn)
		if err != nil {
			return fail(err)
		}
		res.ComplexRoots = toComplexValues(roots)

	case domain.KindInterp:
		dd, err := buildInterp(p)
		if err != nil {
			return fail(err)
		}
		v := dd.Eval(*p.At)
		res.Value = &v
	}

	return res
}

func buildInterp(p domain.Problem) (*interp.DividedDifference, error) {
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	if p.Hermite {
		dys := make([]float64, len(p.Points))
		for i, pt := range p.Points {
			dys[i] = pt.Dy
		}
		return interp.NewHermite(xs, ys, dys)
	}
	return interp.New(xs, ys)
}

func toComplexValues(zs []complex128) []domain.ComplexValue {
	out := make([]domain.ComplexValue, len(zs))
	for i, z := range zs {
		out[i] = domain.ComplexValue{Re: real(z), Im: imag(z)}
	}
	return out
}
