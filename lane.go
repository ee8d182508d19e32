package lcomplex

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/aarzilli/golua/lua"
	"go.uber.org/zap"
)

// Transfer copies the complex value at idx in src into a new allocation in
// dst, using the value's __lanesclone metamethod the way Lua Lanes does. On
// success the copy is left on top of dst's stack. src's stack is unchanged.
func Transfer(dst, src *lua.State, idx int) error {
	idx = absIndex(src, idx)
	from := userdata(src, idx)
	if from == nil {
		return fmt.Errorf("transfer arg #%d (%s): %w", idx, src.LTypename(idx), ErrTypeMismatch)
	}

	top := src.GetTop()
	if !src.GetMetaField(idx, cloneHook) {
		return ErrNotClonable
	}
	if err := src.Call(0, 1); err != nil {
		src.SetTop(top)
		return fmt.Errorf("%s size query: %w", cloneHook, err)
	}
	size := uintptr(src.ToInteger(-1))
	src.Pop(1)
	if size != Size {
		return fmt.Errorf("%w: got %d, want %d", ErrBadSize, size, Size)
	}

	dst.LGetMetaTable(Marker)
	registered := !dst.IsNil(-1)
	dst.Pop(1)
	if !registered {
		return ErrNotRegistered
	}

	dtop := dst.GetTop()
	to := dst.NewUserdata(size)
	dst.LGetMetaTable(Marker)
	dst.SetMetaTable(-2)

	src.GetMetaField(idx, cloneHook)
	src.PushLightUserdata(lightUserdata(to))
	src.PushLightUserdata(lightUserdata(unsafe.Pointer(from)))
	if err := src.Call(2, 0); err != nil {
		src.SetTop(top)
		dst.SetTop(dtop)
		return fmt.Errorf("%s copy: %w", cloneHook, err)
	}

	Logger().Debug("cloned complex value", zap.Uintptr("size", size))
	return nil
}

// Lane is an isolated Lua state with the module opened. Values enter it only
// through Transfer, so nothing is shared with other states.
type Lane struct {
	L  *lua.State
	mu sync.Mutex
}

func NewLane(opts Options) *Lane {
	return &Lane{L: NewState(opts)}
}

// Set copies the complex value at idx in src into the lane's global 'name'.
func (l *Lane) Set(name string, src *lua.State, idx int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := Transfer(l.L, src, idx); err != nil {
		return err
	}
	l.L.SetGlobal(name)
	return nil
}

// Go runs code on the lane in a new goroutine. The returned channel receives
// the result of the chunk and is then closed.
func (l *Lane) Go(code string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		l.mu.Lock()
		defer l.mu.Unlock()
		Logger().Debug("lane started")
		err := l.L.DoString(code)
		Logger().Debug("lane finished", zap.Error(err))
		done <- err
	}()
	return done
}

// Get returns the complex value held by the lane's global 'name'.
func (l *Lane) Get(name string) (Complex, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.L.GetGlobal(name)
	defer l.L.Pop(1)
	return Test(l.L, -1)
}

func (l *Lane) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.L.Close()
}
