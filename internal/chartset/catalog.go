// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chartset

// Columns written by the experiment harness.
const (
	ColMemtableSize   = "dbMemtableMaxSize(MB)"
	ColBufferPoolSize = "bufferPoolMaxSize"
	ColEvictionPolicy = "evictionPolicy"
	ColSearchType     = "searchType"
	ColInputDataSize  = "inputDataSize(MB)"
	ColElapsedTime    = "elapsedTime(sec)"
	ColThroughput     = "throughput(MB/sec)"
	ColLatency        = "latency(sec)"
	ColBloomBits      = "bloomFilterBits"
)

// Axis labels.
const (
	labelInputDataSize  = "InputDataSize (MB)"
	labelBloomBits      = "Bits per entry"
	labelBufferPoolSize = "Buffer Pool Max Size (# of directory entries)"
	labelThroughput     = "Throughput (MB /sec)"
	labelLatency        = "Latency (sec)"
)

// Legend templates.
const (
	legendMemtable = "DB memtable size: %s MB"
	legendEviction = "Eviction Policy: %s"
	legendSearch   = "Search Types: %s"
)

// Directories the harness writes each experiment step to, relative to
// the source directory.
const (
	step1 = "experiments_db_CSV_step1/"
	step2 = "experiments_db_CSV_step2/"
	step3 = "experiments_db_CSV_step3/"
)

// Default returns the charts of the experiment suite, in the order
// they are produced.
func Default() []Job {
	return []Job{
		// Step 1: memtable size.
		{
			Name:   "get_operation",
			CSV:    step1 + "get_operation.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "get_operation.png",
			Title:  "Get operation (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
			Legend: legendMemtable,
			LogY:   true,
		},
		{
			Name:   "get_operation_latency",
			CSV:    step1 + "get_operation.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColLatency,
			Out:    "get_operation_latency.png",
			Title:  "Get operation latency (Latency vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelLatency,
			Legend: legendMemtable,
		},
		{
			Name:   "put_operation",
			CSV:    step1 + "put_operation.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "put_operation.png",
			Title:  "Put operation (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
			Legend: legendMemtable,
		},
		{
			Name:   "scan_operation",
			CSV:    step1 + "scan_operation.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "scan_operation.png",
			Title:  "Scan operation (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
			Legend: legendMemtable,
			LogY:   true,
		},

		// Step 2: buffer pool eviction and search types.
		{
			Name:   "get_operation_eviction_spatial",
			CSV:    step2 + "get_operation_eviction_spatial.csv",
			Group:  ColEvictionPolicy,
			X:      ColBufferPoolSize,
			Y:      ColThroughput,
			Out:    "get_operation_eviction_spatial.png",
			Title:  "Queries with spatial locality (Throughput vs. Max buffer pool size)",
			XLabel: labelBufferPoolSize,
			YLabel: labelThroughput,
			Legend: legendEviction,
		},
		{
			Name:   "get_operation_eviction_random",
			CSV:    step2 + "get_operation_eviction_random.csv",
			Group:  ColEvictionPolicy,
			X:      ColBufferPoolSize,
			Y:      ColThroughput,
			Out:    "get_operation_eviction_random.png",
			Title:  "Random Queries (Throughput vs. Max buffer pool size)",
			XLabel: labelBufferPoolSize,
			YLabel: labelThroughput,
			Legend: legendEviction,
		},
		{
			Name:   "get_operation_search_types",
			CSV:    step2 + "get_operation_search_types.csv",
			Group:  ColSearchType,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "get_operation_search_types.png",
			Title:  "Search Operations (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
			Legend: legendSearch,
		},
		{
			Name:   "scan_operation_search_types",
			CSV:    step2 + "scan_operation_search_types.csv",
			Group:  ColSearchType,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "scan_operation_search_types.png",
			Title:  "Scan Types (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
			Legend: legendSearch,
		},

		// Step 3: LSM tree and bloom filters.
		{
			Name:   "get_operation_lsm",
			CSV:    step3 + "get_operation_lsm.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "get_operation_lsm.png",
			Title:  "Get operation (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
		},
		{
			Name:   "get_operation_latency_lsm",
			CSV:    step3 + "get_operation_lsm.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColLatency,
			Out:    "get_operation_latency_lsm.png",
			Title:  "Get operation latency (Latency vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelLatency,
		},
		{
			Name:   "put_operation_lsm",
			CSV:    step3 + "put_operation_lsm.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "put_operation_lsm.png",
			Title:  "Put operation (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
			LogX:   true,
		},
		{
			Name:   "scan_operation_lsm",
			CSV:    step3 + "scan_operation_lsm.csv",
			Group:  ColMemtableSize,
			X:      ColInputDataSize,
			Y:      ColThroughput,
			Out:    "scan_operation_lsm.png",
			Title:  "Scan operation (Throughput vs. Input data size)",
			XLabel: labelInputDataSize,
			YLabel: labelThroughput,
		},
		{
			Name:   "get_operation_bf",
			CSV:    step3 + "get_operation_bf.csv",
			Group:  ColMemtableSize,
			X:      ColBloomBits,
			Y:      ColThroughput,
			Out:    "get_operation_bf.png",
			Title:  "Get queries (Throughput vs. Bloom Filter Bits per Entry)",
			XLabel: labelBloomBits,
			YLabel: labelThroughput,
		},
	}
}
