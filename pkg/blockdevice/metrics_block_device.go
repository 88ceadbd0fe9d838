package blockdevice

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/outofforest/ramdisk"
	"github.com/outofforest/ramdisk/blocks"
)

var (
	blockDeviceOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ramdisk",
			Subsystem: "blockdevice",
			Name:      "operations_total",
			Help:      "Total number of operations executed on block devices.",
		},
		[]string{"name", "operation", "outcome"})
	blockDeviceBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ramdisk",
			Subsystem: "blockdevice",
			Name:      "bytes_total",
			Help:      "Total number of bytes copied by successful operations on block devices.",
		},
		[]string{"name", "operation"})
)

func init() {
	prometheus.MustRegister(blockDeviceOperationsTotal)
	prometheus.MustRegister(blockDeviceBytesTotal)
}

// Outcomes of block device operations.
const (
	OutcomeOK                = "ok"
	OutcomeOutOfRange        = "out_of_range"
	OutcomeInvalidBufferSize = "invalid_buffer_size"
	OutcomeOther             = "other"
)

type operationMetrics struct {
	ok                prometheus.Counter
	outOfRange        prometheus.Counter
	invalidBufferSize prometheus.Counter
	other             prometheus.Counter
	bytes             prometheus.Counter
}

func newOperationMetrics(name, operation string) operationMetrics {
	return operationMetrics{
		ok:                blockDeviceOperationsTotal.WithLabelValues(name, operation, OutcomeOK),
		outOfRange:        blockDeviceOperationsTotal.WithLabelValues(name, operation, OutcomeOutOfRange),
		invalidBufferSize: blockDeviceOperationsTotal.WithLabelValues(name, operation, OutcomeInvalidBufferSize),
		other:             blockDeviceOperationsTotal.WithLabelValues(name, operation, OutcomeOther),
		bytes:             blockDeviceBytesTotal.WithLabelValues(name, operation),
	}
}

func (m operationMetrics) observe(err error, n int) {
	switch {
	case err == nil:
		m.ok.Inc()
		m.bytes.Add(float64(n))
	case errors.Is(err, ramdisk.ErrOutOfRange):
		m.outOfRange.Inc()
	case errors.Is(err, ramdisk.ErrInvalidBufferSize):
		m.invalidBufferSize.Inc()
	default:
		m.other.Inc()
	}
}

type metricsBlockDevice struct {
	BlockDevice

	read            operationMetrics
	write           operationMetrics
	writeFromString operationMetrics
}

// NewMetricsBlockDevice creates an adapter for BlockDevice that counts
// operations and copied bytes in the form of Prometheus metrics.
func NewMetricsBlockDevice(base BlockDevice, name string) BlockDevice {
	return &metricsBlockDevice{
		BlockDevice:     base,
		read:            newOperationMetrics(name, "Read"),
		write:           newOperationMetrics(name, "Write"),
		writeFromString: newOperationMetrics(name, "WriteFromString"),
	}
}

func (bd *metricsBlockDevice) Read(block blocks.BlockAddress, p []byte) error {
	err := bd.BlockDevice.Read(block, p)
	bd.read.observe(err, len(p))
	return err
}

func (bd *metricsBlockDevice) Write(block blocks.BlockAddress, p []byte) error {
	err := bd.BlockDevice.Write(block, p)
	bd.write.observe(err, len(p))
	return err
}

func (bd *metricsBlockDevice) WriteFromString(block blocks.BlockAddress, text string) error {
	err := bd.BlockDevice.WriteFromString(block, text)
	n := uint64(len(text))
	if blockSize := bd.BlockDevice.BlockSize(); n > blockSize {
		n = blockSize
	}
	bd.writeFromString.observe(err, int(n))
	return err
}
