package drv

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/gralloc/bufutils"
)

type bufferObjectList struct {
	count int
	head  *BufferObject
	tail  *BufferObject
}

func (l *bufferObjectList) Validate() error {
	declaredCount := l.count
	actualCount := 0

	for bo := l.head; bo != nil; bo = bo.next {
		actualCount++

		err := bo.Validate()
		if err != nil {
			return err
		}
	}

	if declaredCount != actualCount {
		return errors.Errorf("the listed number of buffer objects in the list (%d) does not match the actual number of buffer objects (%d)", declaredCount, actualCount)
	}

	return nil
}

func (l *bufferObjectList) AddDetailedStatistics(stats *bufutils.DetailedStatistics) {
	for bo := l.head; bo != nil; bo = bo.next {
		stats.AddBuffer(int(bo.TotalSize))
	}
}

func (l *bufferObjectList) BuildStatsString(writer *jwriter.Writer) {
	s := writer.Array()
	defer s.End()

	for bo := l.head; bo != nil; bo = bo.next {
		o := s.Object()
		bo.printParameters(&o)
		o.End()
	}
}

func (l *bufferObjectList) IsEmpty() bool {
	return l.count == 0
}

func (l *bufferObjectList) Register(bo *BufferObject) {
	if l.count == 0 {
		l.head = bo
		l.tail = bo
		l.count = 1
		return
	}

	bo.setPrev(l.tail)
	l.tail.setNext(bo)

	l.tail = bo
	l.count++
}

func (l *bufferObjectList) Unregister(bo *BufferObject) {
	prev := bo.prev
	next := bo.next

	if prev != nil {
		prev.setNext(next)
	} else {
		l.head = next
	}

	if next != nil {
		next.setPrev(prev)
	} else {
		l.tail = prev
	}

	bo.setNext(nil)
	bo.setPrev(nil)

	l.count--
}
