package udf

import "github.com/apache/arrow-go/v18/arrow"

// Column is the columnar container capability: an external array abstraction
// holding a batch of values of one logical type. Opaque to this layer.
type Column = arrow.Array
