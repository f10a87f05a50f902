package report

import (
	"github.com/katalvlaran/ricci/montecarlo"
)

// Record is the serialized outcome of one significance test. Field names
// follow the published output record; the trailing fields report every
// exclusion so data loss is never silent.
type Record struct {
	Label         string     `json:"label" yaml:"label"`
	NullVariant   string     `json:"null_variant" yaml:"null_variant"`
	MRequested    int        `json:"M_requested" yaml:"M_requested"`
	MValid        int        `json:"M_valid" yaml:"M_valid"`
	Alpha         float64    `json:"alpha" yaml:"alpha"`
	KappaReal     float64    `json:"kappa_real" yaml:"kappa_real"`
	KappaNullMean float64    `json:"kappa_null_mean" yaml:"kappa_null_mean"`
	KappaNullStd  float64    `json:"kappa_null_std" yaml:"kappa_null_std"`
	DeltaKappa    float64    `json:"delta_kappa" yaml:"delta_kappa"`
	PMC           float64    `json:"p_MC" yaml:"p_MC"`
	CliffsDelta   float64    `json:"cliffs_delta" yaml:"cliffs_delta"`
	CI95          [2]float64 `json:"ci_95" yaml:"ci_95,flow"`

	KappaNullDistribution []float64 `json:"kappa_null_distribution" yaml:"kappa_null_distribution,flow"`

	Seed              int64   `json:"seed" yaml:"seed"`
	FailedReplicates  int     `json:"failed_replicates" yaml:"failed_replicates"`
	ExcludedEdgesReal int     `json:"excluded_edges_real" yaml:"excluded_edges_real"`
	ExcludedEdgesNull int     `json:"excluded_edges_null" yaml:"excluded_edges_null"`
	ClampedEdgesReal  int     `json:"clamped_edges_real" yaml:"clamped_edges_real"`
	ClampedEdgesNull  int     `json:"clamped_edges_null" yaml:"clamped_edges_null"`
	RealNodes         int     `json:"real_nodes" yaml:"real_nodes"`
	RealEdges         int     `json:"real_edges" yaml:"real_edges"`
	NullNodesMean     float64 `json:"null_nodes_mean" yaml:"null_nodes_mean"`
	NullEdgesMean     float64 `json:"null_edges_mean" yaml:"null_edges_mean"`
	SwapRatioMean     float64 `json:"swap_ratio_mean" yaml:"swap_ratio_mean"`
	ZScore            float64 `json:"z_score" yaml:"z_score"`
	EffectMagnitude   string  `json:"effect_magnitude" yaml:"effect_magnitude"`
	Geometry          string  `json:"geometry" yaml:"geometry"`
	Cancelled         bool    `json:"cancelled" yaml:"cancelled"`
}

// FromResult flattens res under label.
func FromResult(label string, res *montecarlo.Result) Record {
	dist := make([]float64, len(res.NullDistribution))
	copy(dist, res.NullDistribution)

	return Record{
		Label:                 label,
		NullVariant:           res.Variant,
		MRequested:            res.Requested,
		MValid:                res.Valid,
		Alpha:                 res.Alpha,
		KappaReal:             res.KappaReal,
		KappaNullMean:         res.NullMean,
		KappaNullStd:          res.NullStd,
		DeltaKappa:            res.DeltaKappa,
		PMC:                   res.PValue,
		CliffsDelta:           res.CliffsDelta,
		CI95:                  res.CI95,
		KappaNullDistribution: dist,
		Seed:                  res.Seed,
		FailedReplicates:      res.Failed,
		ExcludedEdgesReal:     res.ExcludedReal,
		ExcludedEdgesNull:     res.ExcludedNull,
		ClampedEdgesReal:      res.ClampedReal,
		ClampedEdgesNull:      res.ClampedNull,
		RealNodes:             res.RealNodes,
		RealEdges:             res.RealEdges,
		NullNodesMean:         res.NullNodesMean,
		NullEdgesMean:         res.NullEdgesMean,
		SwapRatioMean:         res.SwapRatioMean,
		ZScore:                res.ZScore,
		EffectMagnitude:       res.EffectMagnitude,
		Geometry:              res.Geometry,
		Cancelled:             res.Cancelled,
	}
}
