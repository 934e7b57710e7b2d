package bufutils

import "math"

// Statistics summarizes the buffer objects, kernel handles and mappings owned by one driver instance
type Statistics struct {
	BufferCount    int
	HandleCount    int
	MappingCount   int
	AllocatedBytes int
	MappedBytes    int
}

func (s *Statistics) Clear() {
	s.BufferCount = 0
	s.HandleCount = 0
	s.MappingCount = 0
	s.AllocatedBytes = 0
	s.MappedBytes = 0
}

func (s *Statistics) AddStatistics(other *Statistics) {
	s.BufferCount += other.BufferCount
	s.HandleCount += other.HandleCount
	s.MappingCount += other.MappingCount
	s.AllocatedBytes += other.AllocatedBytes
	s.MappedBytes += other.MappedBytes
}

type DetailedStatistics struct {
	Statistics
	BufferSizeMin int
	BufferSizeMax int
}

func (s *DetailedStatistics) Clear() {
	s.Statistics.Clear()
	s.BufferSizeMin = math.MaxInt
	s.BufferSizeMax = 0
}

func (s *DetailedStatistics) AddBuffer(size int) {
	s.BufferCount++
	s.AllocatedBytes += size

	if size < s.BufferSizeMin {
		s.BufferSizeMin = size
	}

	if size > s.BufferSizeMax {
		s.BufferSizeMax = size
	}
}

func (s *DetailedStatistics) AddMapping(length int) {
	s.MappingCount++
	s.MappedBytes += length
}

func (s *DetailedStatistics) AddDetailedStatistics(other *DetailedStatistics) {
	s.Statistics.AddStatistics(&other.Statistics)

	if other.BufferSizeMin < s.BufferSizeMin {
		s.BufferSizeMin = other.BufferSizeMin
	}

	if other.BufferSizeMax > s.BufferSizeMax {
		s.BufferSizeMax = other.BufferSizeMax
	}
}
