package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]TestCase{
	"inside":   insideCases,
	"left":     leftCases,
	"right":    rightCases,
	"crossing": crossingCases,
	"corner":   cornerCases,
	"curve":    curveCases,
	"conic":    conicCases,
	"subpath":  subpathCases,
	"ctm":      ctmCases,
}
