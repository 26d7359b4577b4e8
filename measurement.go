package yawg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/pkg/errors"
)

type MeasurementType uint8

const (
	MeasurementHDRHistogram MeasurementType = 1 + iota
	MeasurementRaw
)

type StatusType uint8

const (
	StatusOK StatusType = 1 + iota
	StatusError
)

func (self StatusType) String() string {
	switch self {
	case StatusOK:
		return "OK"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Used to export the collected measurements into a useful format, for example
// human readable text or machine readable JSON.
type MeasurementExporter interface {
	// Write a measurement to the exported format. v should be int64 or float64
	Write(metric string, measurement string, v interface{}) error
	io.Closer
}

type MakeMeasurementExporterFunc func(w io.WriteCloser) MeasurementExporter

var (
	MeasurementExporters map[string]MakeMeasurementExporterFunc
)

func init() {
	MeasurementExporters = map[string]MakeMeasurementExporterFunc{
		"TextMeasurementExporter": func(w io.WriteCloser) MeasurementExporter {
			return NewTextMeasurementExporter(w)
		},
		"JSONMeasurementExporter": func(w io.WriteCloser) MeasurementExporter {
			return NewJSONMeasurementExporter(w)
		},
		"JSONArrayMeasurementExporter": func(w io.WriteCloser) MeasurementExporter {
			return NewJSONArrayMeasurementExporter(w)
		},
	}
}

func NewMeasurementExporter(className string, w io.WriteCloser) (MeasurementExporter, error) {
	f, ok := MeasurementExporters[className]
	if !ok {
		return nil, errors.Errorf("unsupported measurement exporter: %s", className)
	}
	return f(w), nil
}

// A single measured metric (such as PUT LATENCY)
type OneMeasurement interface {
	Measure(latency int64)
	GetName() string
	GetSummary() string
	// Report a return code.
	ReportStatus(status StatusType)
	// Exports the current measurements to a suitable format.
	ExportMeasurements(exporter MeasurementExporter) error
}

type OneMeasurementBase struct {
	Name            string
	MeasureLock     *sync.Mutex
	ReturnCodes     map[StatusType]uint32
	ReturnCodesLock *sync.Mutex
}

func NewOneMeasurementBase(name string) *OneMeasurementBase {
	return &OneMeasurementBase{
		Name:            name,
		MeasureLock:     &sync.Mutex{},
		ReturnCodes:     make(map[StatusType]uint32),
		ReturnCodesLock: &sync.Mutex{},
	}
}

func (self *OneMeasurementBase) GetName() string {
	return self.Name
}

func (self *OneMeasurementBase) ReportStatus(status StatusType) {
	self.ReturnCodesLock.Lock()
	defer self.ReturnCodesLock.Unlock()
	self.ReturnCodes[status]++
}

func (self *OneMeasurementBase) ExportStatusCounts(exporter MeasurementExporter) error {
	self.ReturnCodesLock.Lock()
	defer self.ReturnCodesLock.Unlock()
	statuses := make([]int, 0, len(self.ReturnCodes))
	for status := range self.ReturnCodes {
		statuses = append(statuses, int(status))
	}
	sort.Ints(statuses)
	for _, s := range statuses {
		status := StatusType(s)
		err := exporter.Write(self.GetName(), fmt.Sprintf("Return=%s", status), self.ReturnCodes[status])
		if err != nil {
			return err
		}
	}
	return nil
}

// Collects latency measurements, and reports them when requested.
type Measurements interface {
	// Report a single value of a single metric. E.g. for put latency,
	// operation="PUT" and latency is the measured value.
	Measure(operation string, latency int64)

	// Return a one line summary of the measurements.
	GetSummary() string

	// Report a return code for a single operation.
	ReportStatus(operation string, status StatusType)

	// Export the current measurements to a suitable format.
	ExportMeasurements(exporter MeasurementExporter) error
}

type DefaultMeasurements struct {
	props              Properties
	measurementType    MeasurementType
	opToMeasurementMap map[string]OneMeasurement
	lock               *sync.RWMutex
}

func NewDefaultMeasurements(props Properties) (*DefaultMeasurements, error) {
	var measurementType MeasurementType
	propStr := props.GetDefault(PropertyMeasurementType, PropertyMeasurementTypeDefault)
	switch propStr {
	case "hdrhistogram":
		measurementType = MeasurementHDRHistogram
	case "raw":
		measurementType = MeasurementRaw
	default:
		return nil, errors.Errorf("unknown %s=%s", PropertyMeasurementType, propStr)
	}
	object := &DefaultMeasurements{
		props:              props,
		measurementType:    measurementType,
		opToMeasurementMap: make(map[string]OneMeasurement),
		lock:               &sync.RWMutex{},
	}
	// validate the per-operation settings
	if _, err := object.constructOneMeasurement("CHECK"); err != nil {
		return nil, err
	}
	return object, nil
}

func (self *DefaultMeasurements) constructOneMeasurement(name string) (OneMeasurement, error) {
	switch self.measurementType {
	case MeasurementHDRHistogram:
		return NewOneMeasurementHdrHistogram(name, self.props)
	case MeasurementRaw:
		return NewOneMeasurementRaw(name, self.props)
	default:
		panic("impossible to be here. Dead code reached. Bugs?")
	}
}

func (self *DefaultMeasurements) Measure(operation string, latency int64) {
	self.getOpMeasurement(operation).Measure(latency)
}

func (self *DefaultMeasurements) GetSummary() string {
	self.lock.RLock()
	defer self.lock.RUnlock()
	parts := make([]string, 0, len(self.opToMeasurementMap))
	for _, name := range self.operations() {
		if s := self.opToMeasurementMap[name].GetSummary(); len(s) > 0 {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (self *DefaultMeasurements) ReportStatus(operation string, status StatusType) {
	self.getOpMeasurement(operation).ReportStatus(status)
}

func (self *DefaultMeasurements) ExportMeasurements(exporter MeasurementExporter) error {
	self.lock.RLock()
	defer self.lock.RUnlock()
	for _, name := range self.operations() {
		if err := self.opToMeasurementMap[name].ExportMeasurements(exporter); err != nil {
			return err
		}
	}
	return nil
}

// operations returns the measured operation names in sorted order.
// Callers hold the lock.
func (self *DefaultMeasurements) operations() []string {
	names := make([]string, 0, len(self.opToMeasurementMap))
	for name := range self.opToMeasurementMap {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (self *DefaultMeasurements) getOpMeasurement(operation string) OneMeasurement {
	self.lock.RLock()
	m, ok := self.opToMeasurementMap[operation]
	self.lock.RUnlock()
	if ok {
		return m
	}
	self.lock.Lock()
	defer self.lock.Unlock()
	if m, ok = self.opToMeasurementMap[operation]; ok {
		return m
	}
	m, err := self.constructOneMeasurement(operation)
	if err != nil {
		// the same settings were accepted by NewDefaultMeasurements
		panic(fmt.Sprintf("unexpected error: %s", err))
	}
	self.opToMeasurementMap[operation] = m
	return m
}

// Write human readable text. Tries to emulate the previous print report method.
type TextMeasurementExporter struct {
	io.WriteCloser
	buf *bufio.Writer
}

func NewTextMeasurementExporter(w io.WriteCloser) *TextMeasurementExporter {
	return &TextMeasurementExporter{
		WriteCloser: w,
		buf:         bufio.NewWriter(w),
	}
}

func (self *TextMeasurementExporter) Write(metric string, measurement string, v interface{}) error {
	_, err := fmt.Fprintf(self.buf, "[%s], %s, %v\n", metric, measurement, v)
	return err
}

func (self *TextMeasurementExporter) Close() error {
	err := self.buf.Flush()
	err2 := self.WriteCloser.Close()
	if err != nil {
		return err
	}
	return err2
}

type innerJSONMeasurement struct {
	Metric      string      `json:"metric"`
	Measurement string      `json:"measurement"`
	Value       interface{} `json:"value"`
}

// Export measurements into a machine readable JSON file, one object per line.
type JSONMeasurementExporter struct {
	io.WriteCloser
	buf *bufio.Writer
}

func NewJSONMeasurementExporter(w io.WriteCloser) *JSONMeasurementExporter {
	return &JSONMeasurementExporter{
		WriteCloser: w,
		buf:         bufio.NewWriter(w),
	}
}

func (self *JSONMeasurementExporter) Write(metric string, measurement string, v interface{}) error {
	b, err := json.Marshal(&innerJSONMeasurement{
		Metric:      metric,
		Measurement: measurement,
		Value:       v,
	})
	if err != nil {
		return err
	}
	if _, err = self.buf.Write(b); err != nil {
		return err
	}
	return self.buf.WriteByte('\n')
}

func (self *JSONMeasurementExporter) Close() error {
	err := self.buf.Flush()
	err2 := self.WriteCloser.Close()
	if err != nil {
		return err
	}
	return err2
}

// Export measurements into a machine readable JSON Array of measurement objects.
type JSONArrayMeasurementExporter struct {
	io.WriteCloser
	buf        *bufio.Writer
	afterFirst bool
}

func NewJSONArrayMeasurementExporter(w io.WriteCloser) *JSONArrayMeasurementExporter {
	object := &JSONArrayMeasurementExporter{
		WriteCloser: w,
		buf:         bufio.NewWriter(w),
		afterFirst:  false,
	}
	object.buf.WriteString("[")
	return object
}

func (self *JSONArrayMeasurementExporter) Write(metric string, measurement string, v interface{}) error {
	b, err := json.Marshal(&innerJSONMeasurement{
		Metric:      metric,
		Measurement: measurement,
		Value:       v,
	})
	if err != nil {
		return err
	}
	if self.afterFirst {
		if _, err = self.buf.WriteString(","); err != nil {
			return err
		}
	} else {
		self.afterFirst = true
	}
	_, err = self.buf.Write(b)
	return err
}

func (self *JSONArrayMeasurementExporter) Close() error {
	_, err := self.buf.WriteString("]")
	if err == nil {
		err = self.buf.Flush()
	}
	err2 := self.WriteCloser.Close()
	if err != nil {
		return err
	}
	return err2
}

// One raw point, has two fields:
// timestamp when the datapoint is inserted, and the value.
type RawDataPoint struct {
	timestamp time.Time
	value     int64
}

// Record a series of measurements as raw data points without down sampling,
// optionally write to an output file when configured.
type OneMeasurementRaw struct {
	*OneMeasurementBase
	filePath       string
	noSummaryStats bool
	measurements   []RawDataPoint
	totalLatency   int64
	// A window of stats to print summary for at the next GetSummary() call.
	// It's suppose to be a one line summary, so we will just print count and
	// average.
	windowOperations   int64
	windowTotalLatency int64
}

func NewOneMeasurementRaw(name string, props Properties) (*OneMeasurementRaw, error) {
	noSummaryStats, err := props.GetBool(NoSummaryStats, NoSummaryStatsDefault)
	if err != nil {
		return nil, err
	}
	object := &OneMeasurementRaw{
		OneMeasurementBase: NewOneMeasurementBase(name),
		filePath:           props.GetDefault(OutputFilePath, OutputFilePathDefault),
		noSummaryStats:     noSummaryStats,
		measurements:       make([]RawDataPoint, 0),
	}
	return object, nil
}

func (self *OneMeasurementRaw) Measure(latency int64) {
	self.MeasureLock.Lock()
	defer self.MeasureLock.Unlock()

	self.totalLatency += latency
	self.windowTotalLatency += latency
	self.windowOperations++
	self.measurements = append(self.measurements, RawDataPoint{
		timestamp: time.Now(),
		value:     latency,
	})
}

func (self *OneMeasurementRaw) GetSummary() string {
	self.MeasureLock.Lock()
	defer self.MeasureLock.Unlock()
	if self.windowOperations == 0 {
		return ""
	}
	ret := fmt.Sprintf("[%s count: %d, average latency(ns): %.2f]",
		self.GetName(), self.windowOperations, float64(self.windowTotalLatency)/float64(self.windowOperations))
	self.windowOperations = 0
	self.windowTotalLatency = 0
	return ret
}

func (self *OneMeasurementRaw) writeRawPoints() error {
	var w io.Writer = os.Stdout
	if len(self.filePath) != 0 {
		f, err := os.OpenFile(self.filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, "%s latency raw data: op, timestamp(us), latency(ns)\n", self.GetName())
	for _, p := range self.measurements {
		fmt.Fprintf(buf, "%s,%d,%d\n", self.GetName(), p.timestamp.UnixNano()/1000, p.value)
	}
	return buf.Flush()
}

func (self *OneMeasurementRaw) ExportMeasurements(exporter MeasurementExporter) error {
	self.MeasureLock.Lock()
	defer self.MeasureLock.Unlock()

	// Output raw data points first then print out a summary of percentiles.
	if err := self.writeRawPoints(); err != nil {
		return err
	}
	name := self.GetName()
	total := len(self.measurements)
	if err := exporter.Write(name, "Operations", total); err != nil {
		return err
	}
	if total > 0 && !self.noSummaryStats {
		values := make([]int64, 0, total)
		for _, p := range self.measurements {
			values = append(values, p.value)
		}
		sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
		stats := []struct {
			measurement string
			value       interface{}
		}{
			{"AverageLatency(ns)", float64(self.totalLatency) / float64(total)},
			{"MinLatency(ns)", values[0]},
			{"MaxLatency(ns)", values[total-1]},
			{"50thPercentileLatency(ns)", values[int(float64(total)*0.5)]},
			{"95thPercentileLatency(ns)", values[int(float64(total)*0.95)]},
			{"99thPercentileLatency(ns)", values[int(float64(total)*0.99)]},
		}
		for _, s := range stats {
			if err := exporter.Write(name, s.measurement, s.value); err != nil {
				return err
			}
		}
	}
	return self.ExportStatusCounts(exporter)
}

// Take measurements and maintain a HdrHistogram of a given metric, such as PUT LATENCY.
type OneMeasurementHdrHistogram struct {
	*OneMeasurementBase
	histogram   *hdrhistogram.Histogram
	percentiles []int64
}

// Helper function to parse the given percentile value string.
func parsePercentileValues(prop, defaultValue string) []int64 {
	parts := strings.Split(prop, ",")
	ret := make([]int64, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || i <= 0 || i > 100 {
			Warnf("invalid percentile %q in %q, fall back to %q", p, prop, defaultValue)
			return parsePercentileValues(defaultValue, defaultValue)
		}
		ret = append(ret, i)
	}
	return ret
}

func NewOneMeasurementHdrHistogram(name string, props Properties) (*OneMeasurementHdrHistogram, error) {
	prop := props.GetDefault(PropertyPercentiles, PropertyPercentilesDefault)
	percentiles := parsePercentileValues(prop, PropertyPercentilesDefault)
	max, err := props.GetInt64(PropertyHdrHistogramMax, PropertyHdrHistogramMaxDefault)
	if err != nil {
		return nil, err
	}
	sig, err := props.GetInt64(PropertyHdrHistogramSig, PropertyHdrHistogramSigDefault)
	if err != nil {
		return nil, err
	}
	if sig < 1 || sig > 5 {
		return nil, errors.Errorf("%s must be within [1, 5], got %d", PropertyHdrHistogramSig, sig)
	}
	if max < 2 {
		return nil, errors.Errorf("%s must be at least 2, got %d", PropertyHdrHistogramMax, max)
	}
	object := &OneMeasurementHdrHistogram{
		OneMeasurementBase: NewOneMeasurementBase(name),
		histogram:          hdrhistogram.New(1, max, int(sig)),
		percentiles:        percentiles,
	}
	return object, nil
}

// Latency is reported in nanoseconds. Values beyond the configured maximum
// are saturated rather than dropped.
func (self *OneMeasurementHdrHistogram) Measure(latency int64) {
	self.MeasureLock.Lock()
	defer self.MeasureLock.Unlock()

	if latency < 1 {
		latency = 1
	}
	if err := self.histogram.RecordValue(latency); err != nil {
		self.histogram.RecordValue(self.histogram.HighestTrackableValue())
	}
}

func (self *OneMeasurementHdrHistogram) GetSummary() string {
	self.MeasureLock.Lock()
	defer self.MeasureLock.Unlock()
	if self.histogram.TotalCount() == 0 {
		return ""
	}
	format := "[%s: Count=%d, Max=%d, Min=%d, Avg=%.2f, 90=%d, 99=%d, 99.9=%d]"
	return fmt.Sprintf(format,
		self.GetName(),
		self.histogram.TotalCount(),
		self.histogram.Max(),
		self.histogram.Min(),
		self.histogram.Mean(),
		self.histogram.ValueAtQuantile(90),
		self.histogram.ValueAtQuantile(99),
		self.histogram.ValueAtQuantile(99.9))
}

var (
	Suffixes = []string{"th", "st", "nd", "rd", "th", "th", "th", "th", "th", "th"}
)

func ordinal(p int64) string {
	switch p % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", p)
	default:
		return fmt.Sprintf("%d%s", p, Suffixes[p%10])
	}
}

// This is called from the main goroutine, on orderly termination.
func (self *OneMeasurementHdrHistogram) ExportMeasurements(exporter MeasurementExporter) error {
	self.MeasureLock.Lock()
	defer self.MeasureLock.Unlock()

	name := self.GetName()
	stats := []struct {
		measurement string
		value       interface{}
	}{
		{"Operations", self.histogram.TotalCount()},
		{"AverageLatency(ns)", self.histogram.Mean()},
		{"MinLatency(ns)", self.histogram.Min()},
		{"MaxLatency(ns)", self.histogram.Max()},
	}
	for _, s := range stats {
		if err := exporter.Write(name, s.measurement, s.value); err != nil {
			return err
		}
	}
	for _, p := range self.percentiles {
		err := exporter.Write(name, ordinal(p)+"PercentileLatency(ns)", self.histogram.ValueAtQuantile(float64(p)))
		if err != nil {
			return err
		}
	}
	return self.ExportStatusCounts(exporter)
}
