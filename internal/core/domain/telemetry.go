package domain

// Span attribute keys recorded for each diffed pair.
const (
	AttrPrimary    = "differ.primary"
	AttrSecondary  = "differ.secondary"
	AttrSimilarity = "differ.similarity"
	AttrConfidence = "differ.confidence"
	AttrMatched    = "differ.matched"
	AttrCacheReuse = "differ.cache_reused"
	AttrWorker     = "differ.worker"
)
