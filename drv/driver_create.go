package drv

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/gralloc/bufutils"
	"github.com/vkngwrapper/gralloc/combination"
	"github.com/vkngwrapper/gralloc/internal/utils"
	"github.com/vkngwrapper/gralloc/ledger"
	"golang.org/x/exp/slog"
)

// CreateFlags indicate specific driver behaviors to activate or deactivate
type CreateFlags int32

var driverCreateFlagsMapping = common.NewFlagStringMapping[CreateFlags]()

func (f CreateFlags) Register(str string) {
	driverCreateFlagsMapping.Register(f, str)
}
func (f CreateFlags) String() string {
	return driverCreateFlagsMapping.FlagsToString(f)
}

const (
	// CreateExternallySynchronized ensures that this driver and all buffer objects created from it
	// will not be synchronized internally. The consumer must guarantee they are used from only one
	// thread at a time or are synchronized by some other mechanism.
	CreateExternallySynchronized CreateFlags = 1 << iota
)

func init() {
	CreateExternallySynchronized.Register("CreateExternallySynchronized")
}

// CreateOptions contains optional settings when creating a driver
type CreateOptions struct {
	// Flags indicates specific driver behaviors to activate or deactivate
	Flags CreateFlags
	// MaxTextureSize is the largest width or height IsCombinationSupported and Create will accept.
	// Zero means unlimited.
	MaxTextureSize uint32
}

// New creates a new Driver and initializes the provided backend
//
// logger - The logger used for debug tracing and cleanup failures. If nil, nothing is logged.
//
// backend - The backend that allocates, imports and maps buffer storage
//
// options - Optional parameters: it is valid to leave all the fields blank
func New(logger *slog.Logger, backend Backend, options CreateOptions) (*Driver, error) {
	if backend == nil {
		return nil, errors.New("attempted to create a driver without a backend")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard))
	}

	useMutex := options.Flags&CreateExternallySynchronized == 0

	driver := &Driver{
		logger:         logger,
		backend:        backend,
		createFlags:    options.Flags,
		maxTextureSize: options.MaxTextureSize,
		mutex: utils.OptionalMutex{
			UseMutex: useMutex,
		},
		registry: &combination.Registry{},
		handles:  ledger.NewHandleTable(),
		mappings: &ledger.MappingCache{},
	}

	err := backend.Init(driver.registry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to initialize backend %s", backend.Name())
	}

	bufutils.DebugValidate(driver.registry)

	logger.Debug("Driver::New",
		slog.String("Backend", backend.Name()),
		slog.Int("Combinations", driver.registry.Len()),
		slog.String("Flags", options.Flags.String()),
	)

	return driver, nil
}
