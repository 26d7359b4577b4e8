package yawg

const (
	// Client
	// The seed of the random source. 0 means seeding from the clock, so
	// consecutive runs produce different files.
	PropertySeed        = "seed"
	PropertySeedDefault = "0"
	// The number of output files written by one invocation.
	PropertyFileCount        = "filecount"
	PropertyFileCountDefault = "3"
	// The number of records written into each output file.
	PropertyRecordCount        = "recordcount"
	PropertyRecordCountDefault = "1000"
	// The number of goroutines used by the suite command.
	PropertyThreadCount        = "threadcount"
	PropertyThreadCountDefault = "1"
	// The exporter class to be used. The default is TextMeasurementExporter.
	PropertyExporter        = "exporter"
	PropertyExporterDefault = "TextMeasurementExporter"
	// If set to the path of a file, this file will be written instead of stdout.
	PropertyExportFile = "exportfile"
	// The minimum level of log lines written to stderr.
	// Options are "verbose", "debug", "info", "warn", "error" and "quiet".
	PropertyLogLevel        = "log.level"
	PropertyLogLevelDefault = "info"

	// output
	// The directory output files are written into. strftime escapes such as
	// %Y%m%d are expanded with the start time of the run.
	PropertyOutputDir        = "output.dir"
	PropertyOutputDirDefault = "."
	// The file name prefix, output files are named "<prefix>_<n>.txt".
	PropertyOutputPrefix = "output.prefix"
	// Whether to create the output directory when it doesn't exist.
	PropertyOutputMkdir        = "output.mkdir"
	PropertyOutputMkdirDefault = "false"

	// value bounds
	// The inclusive lower bound of every generated integer.
	PropertyMinValue        = "minvalue"
	PropertyMinValueDefault = "-2147483647"
	// The inclusive upper bound of every generated integer.
	PropertyMaxValue        = "maxvalue"
	PropertyMaxValueDefault = "2147483647"

	// workload
	// The name of the property for the distribution of keys.
	// Options are "uniform", "gaussian", "zipfian", "hotspot" and "sequential".
	PropertyKeyDistribution        = "keydistribution"
	PropertyKeyDistributionDefault = "uniform"
	// The name of the property for the distribution of values of put commands.
	PropertyValueDistribution        = "valuedistribution"
	PropertyValueDistributionDefault = "uniform"
	// The mean of the gaussian distribution.
	PropertyGaussianMean        = "gaussian.mean"
	PropertyGaussianMeanDefault = "0"
	// The standard deviation of the gaussian distribution.
	PropertyGaussianStdDev        = "gaussian.stddev"
	PropertyGaussianStdDevDefault = "800000000"
	// Percentage data items that constitute the hot set.
	HotspotDataFraction        = "hotspotdatafraction"
	HotspotDataFractionDefault = "0.2"
	// Percentage opertions that access the hot set.
	HotspotOpnFraction        = "hotspotopnfraction"
	HotspotOpnFractionDefault = "0.8"
	// The first key of the sequential distribution.
	PropertyInsertStart        = "insertstart"
	PropertyInsertStartDefault = "0"
	// Half of the width of each range query.
	PropertyRangeHalfWidth        = "rangehalfwidth"
	PropertyRangeHalfWidthDefault = "100000000"

	// mixed workload
	PropertyPutProportion           = "putproportion"
	PropertyPutProportionDefault    = "0.5"
	PropertyGetProportion           = "getproportion"
	PropertyGetProportionDefault    = "0.4"
	PropertyDeleteProportion        = "deleteproportion"
	PropertyDeleteProportionDefault = "0.05"
	PropertyRangeProportion         = "rangeproportion"
	PropertyRangeProportionDefault  = "0.05"

	// sampler
	// The input workload file whose keys are sampled.
	PropertySamplerInput = "sampler.input"
	// The index of the key field in each input line. "p k v" and "g k" lines
	// keep the key at 1.
	PropertySamplerKeyField        = "sampler.keyfield"
	PropertySamplerKeyFieldDefault = "1"
	// How many existing keys to pick per output file.
	PropertySamplerOldCount        = "sampler.oldcount"
	PropertySamplerOldCountDefault = "900"
	// How many keys absent from the input to generate per output file.
	PropertySamplerNewCount        = "sampler.newcount"
	PropertySamplerNewCountDefault = "100"
	// How many consecutive rejected draws are tolerated for one new key
	// before giving up.
	PropertySamplerMaxRetries        = "sampler.maxretries"
	PropertySamplerMaxRetriesDefault = "10000"
	// Whether to interleave the old and new keys instead of writing the old
	// group first.
	PropertySamplerShuffle        = "sampler.shuffle"
	PropertySamplerShuffleDefault = "false"
	// The command written for every sampled key, "g" or "d".
	PropertySamplerOp        = "sampler.op"
	PropertySamplerOpDefault = "g"

	// suite
	// Each suite file holds 2^(base + step*n) records.
	PropertySuiteBase        = "suite.base"
	PropertySuiteBaseDefault = "15"
	PropertySuiteStep        = "suite.step"
	PropertySuiteStepDefault = "1"
	// The number of sizes in the sweep.
	PropertySuiteCount        = "suite.count"
	PropertySuiteCountDefault = "11"
	// The command of suite files, "p" or "g".
	PropertySuiteOp        = "suite.op"
	PropertySuiteOpDefault = "p"

	// clients
	// The load file named by each client driver script. The two verbs are
	// replaced by the split count and the client index.
	PropertyClientLoadFile        = "clients.loadfile"
	PropertyClientLoadFileDefault = "workloads/load_%d_%d.dat"
	PropertyClientPrefix          = "clients.prefix"
	PropertyClientPrefixDefault   = "client_input"

	// measurement
	PropertyMeasurementType        = "measurementtype"
	PropertyMeasurementTypeDefault = "hdrhistogram"

	// Optionally, user can configure an output file to save the raw
	// data points. Default is none, raw results will be written to stdout.
	OutputFilePath        = "measurement.raw.output_file"
	OutputFilePathDefault = ""
	// Optionally, user can request to not output summary stats.
	NoSummaryStats        = "measurement.raw.no_summary"
	NoSummaryStatsDefault = "false"

	// The name of the property for deciding what percentile values to output.
	PropertyPercentiles = "hdrhistogram.percentiles"
	// The default value of `PropertyPercentiles`
	PropertyPercentilesDefault = "50,95,99"
	// The largest latency(ns) tracked by the hdrhistogram.
	PropertyHdrHistogramMax        = "hdrhistogram.max"
	PropertyHdrHistogramMaxDefault = "10000000000"
	// The number of significant figures kept by the hdrhistogram.
	PropertyHdrHistogramSig        = "hdrhistogram.sig"
	PropertyHdrHistogramSigDefault = "3"
)
