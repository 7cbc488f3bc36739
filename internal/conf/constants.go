package conf

// MaxRecords - Default maximum number of records the record store accepts
const MaxRecords int = 512 * 1024

// SlotFactor - Default number of slots per record of capacity
const SlotFactor int64 = 2

// BuildCount - Default number of times each table is rebuilt in the build phase
const BuildCount int = 10

// SearchCount - Default number of lookups in the search phase
const SearchCount int = 100000

// SearchSeed - Default seed of the pseudo random sequence picking records to look up
const SearchSeed int64 = 123456

// TicksPerSecond - Resolution of the ticks reported on progress lines (CPU microseconds)
const TicksPerSecond int64 = 1000000

// LogLevel - Default log level
const LogLevel = "info"
