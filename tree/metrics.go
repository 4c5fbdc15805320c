package tree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var nodesGenerated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pitree_nodes_generated",
	Help: "Number of tree nodes created by generation",
})

var relinks = promauto.NewCounter(prometheus.CounterOpts{
	Name: "pitree_relinks",
	Help: "Number of full parent back-reference rebuilds",
})

var treesEncoded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pitree_trees_encoded",
	Help: "Number of trees encoded, by codec and outcome",
}, []string{"codec", "status"})

var treesDecoded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pitree_trees_decoded",
	Help: "Number of trees decoded, by codec and outcome",
}, []string{"codec", "status"})

var bytesEncoded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pitree_bytes_encoded",
	Help: "Total size of encoded trees",
}, []string{"codec"})
