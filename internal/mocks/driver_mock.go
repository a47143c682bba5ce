package mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/gojuno/minimock/v3"

	"github.com/tarantool/go-kvns/kv"
)

// DriverMock implements driver.Driver
type DriverMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcFetch          func(ctx context.Context, key string) (e1 kv.Entry, err error)
	inspectFuncFetch   func(ctx context.Context, key string)
	afterFetchCounter  uint64
	beforeFetchCounter uint64
	FetchMock          mDriverMockFetch

	funcList          func(ctx context.Context, prefix string, limit int, startAfter string) (p1 kv.Page, err error)
	inspectFuncList   func(ctx context.Context, prefix string, limit int, startAfter string)
	afterListCounter  uint64
	beforeListCounter uint64
	ListMock          mDriverMockList

	funcRemove          func(ctx context.Context, key string) (err error)
	inspectFuncRemove   func(ctx context.Context, key string)
	afterRemoveCounter  uint64
	beforeRemoveCounter uint64
	RemoveMock          mDriverMockRemove

	funcStore          func(ctx context.Context, key string, entry kv.Entry) (err error)
	inspectFuncStore   func(ctx context.Context, key string, entry kv.Entry)
	afterStoreCounter  uint64
	beforeStoreCounter uint64
	StoreMock          mDriverMockStore
}

// NewDriverMock returns a mock for driver.Driver
func NewDriverMock(t minimock.Tester) *DriverMock {
	m := &DriverMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.FetchMock = mDriverMockFetch{mock: m}
	m.FetchMock.callArgs = []*DriverMockFetchParams{}

	m.ListMock = mDriverMockList{mock: m}
	m.ListMock.callArgs = []*DriverMockListParams{}

	m.RemoveMock = mDriverMockRemove{mock: m}
	m.RemoveMock.callArgs = []*DriverMockRemoveParams{}

	m.StoreMock = mDriverMockStore{mock: m}
	m.StoreMock.callArgs = []*DriverMockStoreParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mDriverMockFetch struct {
	optional           bool
	mock               *DriverMock
	defaultExpectation *DriverMockFetchExpectation
	expectations       []*DriverMockFetchExpectation

	callArgs []*DriverMockFetchParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// DriverMockFetchExpectation specifies expectation struct of the driver.Driver.Fetch
type DriverMockFetchExpectation struct {
	mock    *DriverMock
	params  *DriverMockFetchParams
	results *DriverMockFetchResults
	Counter uint64
}

// DriverMockFetchParams contains parameters of the driver.Driver.Fetch
type DriverMockFetchParams struct {
	ctx context.Context
	key string
}

// DriverMockFetchResults contains results of the driver.Driver.Fetch
type DriverMockFetchResults struct {
	e1  kv.Entry
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmFetch *mDriverMockFetch) Optional() *mDriverMockFetch {
	mmFetch.optional = true
	return mmFetch
}

// Expect sets up expected params for driver.Driver.Fetch
func (mmFetch *mDriverMockFetch) Expect(ctx context.Context, key string) *mDriverMockFetch {
	if mmFetch.mock.funcFetch != nil {
		mmFetch.mock.t.Fatalf("DriverMock.Fetch mock is already set by Set")
	}

	if mmFetch.defaultExpectation == nil {
		mmFetch.defaultExpectation = &DriverMockFetchExpectation{}
	}

	mmFetch.defaultExpectation.params = &DriverMockFetchParams{ctx, key}
	for _, e := range mmFetch.expectations {
		if minimock.Equal(e.params, mmFetch.defaultExpectation.params) {
			mmFetch.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmFetch.defaultExpectation.params)
		}
	}

	return mmFetch
}

// Inspect accepts an inspector function that has same arguments as the driver.Driver.Fetch
func (mmFetch *mDriverMockFetch) Inspect(f func(ctx context.Context, key string)) *mDriverMockFetch {
	if mmFetch.mock.inspectFuncFetch != nil {
		mmFetch.mock.t.Fatalf("Inspect function is already set for DriverMock.Fetch")
	}

	mmFetch.mock.inspectFuncFetch = f

	return mmFetch
}

// Return sets up results that will be returned by driver.Driver.Fetch
func (mmFetch *mDriverMockFetch) Return(e1 kv.Entry, err error) *DriverMock {
	if mmFetch.mock.funcFetch != nil {
		mmFetch.mock.t.Fatalf("DriverMock.Fetch mock is already set by Set")
	}

	if mmFetch.defaultExpectation == nil {
		mmFetch.defaultExpectation = &DriverMockFetchExpectation{mock: mmFetch.mock}
	}
	mmFetch.defaultExpectation.results = &DriverMockFetchResults{e1, err}
	return mmFetch.mock
}

// Set uses given function f to mock the driver.Driver.Fetch method
func (mmFetch *mDriverMockFetch) Set(f func(ctx context.Context, key string) (e1 kv.Entry, err error)) *DriverMock {
	if mmFetch.defaultExpectation != nil {
		mmFetch.mock.t.Fatalf("Default expectation is already set for the driver.Driver.Fetch method")
	}

	if len(mmFetch.expectations) > 0 {
		mmFetch.mock.t.Fatalf("Some expectations are already set for the driver.Driver.Fetch method")
	}

	mmFetch.mock.funcFetch = f
	return mmFetch.mock
}

// When sets expectation for the driver.Driver.Fetch which will trigger the result defined by the following
// Then helper
func (mmFetch *mDriverMockFetch) When(ctx context.Context, key string) *DriverMockFetchExpectation {
	if mmFetch.mock.funcFetch != nil {
		mmFetch.mock.t.Fatalf("DriverMock.Fetch mock is already set by Set")
	}

	expectation := &DriverMockFetchExpectation{
		mock:   mmFetch.mock,
		params: &DriverMockFetchParams{ctx, key},
	}
	mmFetch.expectations = append(mmFetch.expectations, expectation)
	return expectation
}

// Then sets up driver.Driver.Fetch return parameters for the expectation previously defined by the When method
func (e *DriverMockFetchExpectation) Then(e1 kv.Entry, err error) *DriverMock {
	e.results = &DriverMockFetchResults{e1, err}
	return e.mock
}

// Times sets number of times driver.Driver.Fetch should be invoked
func (mmFetch *mDriverMockFetch) Times(n uint64) *mDriverMockFetch {
	if n == 0 {
		mmFetch.mock.t.Fatalf("Times of DriverMock.Fetch mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmFetch.expectedInvocations, n)
	return mmFetch
}

func (mmFetch *mDriverMockFetch) invocationsDone() bool {
	if len(mmFetch.expectations) == 0 && mmFetch.defaultExpectation == nil && mmFetch.mock.funcFetch == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmFetch.mock.afterFetchCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmFetch.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Fetch implements driver.Driver
func (mm_f *DriverMock) Fetch(ctx context.Context, key string) (e1 kv.Entry, err error) {
	mm_atomic.AddUint64(&mm_f.beforeFetchCounter, 1)
	defer mm_atomic.AddUint64(&mm_f.afterFetchCounter, 1)

	if mm_f.inspectFuncFetch != nil {
		mm_f.inspectFuncFetch(ctx, key)
	}

	mm_params := DriverMockFetchParams{ctx, key}

	// Record call args
	mm_f.FetchMock.mutex.Lock()
	mm_f.FetchMock.callArgs = append(mm_f.FetchMock.callArgs, &mm_params)
	mm_f.FetchMock.mutex.Unlock()

	for _, e := range mm_f.FetchMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.e1, e.results.err
		}
	}

	if mm_f.FetchMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_f.FetchMock.defaultExpectation.Counter, 1)
		mm_want := mm_f.FetchMock.defaultExpectation.params
		mm_got := DriverMockFetchParams{ctx, key}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_f.t.Errorf("DriverMock.Fetch got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_f.FetchMock.defaultExpectation.results
		if mm_results == nil {
			mm_f.t.Fatal("No results are set for the DriverMock.Fetch")
		}
		return (*mm_results).e1, (*mm_results).err
	}
	if mm_f.funcFetch != nil {
		return mm_f.funcFetch(ctx, key)
	}
	mm_f.t.Fatalf("Unexpected call to DriverMock.Fetch. %v %v", ctx, key)
	return
}

// FetchAfterCounter returns a count of finished DriverMock.Fetch invocations
func (mmFetch *DriverMock) FetchAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmFetch.afterFetchCounter)
}

// FetchBeforeCounter returns a count of DriverMock.Fetch invocations
func (mmFetch *DriverMock) FetchBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmFetch.beforeFetchCounter)
}

// Calls returns a list of arguments used in each call to DriverMock.Fetch.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmFetch *mDriverMockFetch) Calls() []*DriverMockFetchParams {
	mmFetch.mutex.RLock()

	argCopy := make([]*DriverMockFetchParams, len(mmFetch.callArgs))
	copy(argCopy, mmFetch.callArgs)

	mmFetch.mutex.RUnlock()

	return argCopy
}

// MinimockFetchDone returns true if the count of the Fetch invocations corresponds
// the number of defined expectations
func (m *DriverMock) MinimockFetchDone() bool {
	if m.FetchMock.optional {
		return true
	}

	for _, e := range m.FetchMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.FetchMock.invocationsDone()
}

// MinimockFetchInspect logs each unmet expectation
func (m *DriverMock) MinimockFetchInspect() {
	for _, e := range m.FetchMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to DriverMock.Fetch with params: %#v", *e.params)
		}
	}

	afterFetchCounter := mm_atomic.LoadUint64(&m.afterFetchCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.FetchMock.defaultExpectation != nil && afterFetchCounter < 1 {
		if m.FetchMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to DriverMock.Fetch")
		} else {
			m.t.Errorf("Expected call to DriverMock.Fetch with params: %#v", *m.FetchMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcFetch != nil && afterFetchCounter < 1 {
		m.t.Error("Expected call to DriverMock.Fetch")
	}

	if !m.FetchMock.invocationsDone() && afterFetchCounter > 0 {
		m.t.Errorf("Expected %d calls to DriverMock.Fetch but found %d calls",
			mm_atomic.LoadUint64(&m.FetchMock.expectedInvocations), afterFetchCounter)
	}
}

type mDriverMockList struct {
	optional           bool
	mock               *DriverMock
	defaultExpectation *DriverMockListExpectation
	expectations       []*DriverMockListExpectation

	callArgs []*DriverMockListParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// DriverMockListExpectation specifies expectation struct of the driver.Driver.List
type DriverMockListExpectation struct {
	mock    *DriverMock
	params  *DriverMockListParams
	results *DriverMockListResults
	Counter uint64
}

// DriverMockListParams contains parameters of the driver.Driver.List
type DriverMockListParams struct {
	ctx        context.Context
	prefix     string
	limit      int
	startAfter string
}

// DriverMockListResults contains results of the driver.Driver.List
type DriverMockListResults struct {
	p1  kv.Page
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmList *mDriverMockList) Optional() *mDriverMockList {
	mmList.optional = true
	return mmList
}

// Expect sets up expected params for driver.Driver.List
func (mmList *mDriverMockList) Expect(ctx context.Context, prefix string, limit int, startAfter string) *mDriverMockList {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("DriverMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &DriverMockListExpectation{}
	}

	mmList.defaultExpectation.params = &DriverMockListParams{ctx, prefix, limit, startAfter}
	for _, e := range mmList.expectations {
		if minimock.Equal(e.params, mmList.defaultExpectation.params) {
			mmList.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmList.defaultExpectation.params)
		}
	}

	return mmList
}

// Inspect accepts an inspector function that has same arguments as the driver.Driver.List
func (mmList *mDriverMockList) Inspect(f func(ctx context.Context, prefix string, limit int, startAfter string)) *mDriverMockList {
	if mmList.mock.inspectFuncList != nil {
		mmList.mock.t.Fatalf("Inspect function is already set for DriverMock.List")
	}

	mmList.mock.inspectFuncList = f

	return mmList
}

// Return sets up results that will be returned by driver.Driver.List
func (mmList *mDriverMockList) Return(p1 kv.Page, err error) *DriverMock {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("DriverMock.List mock is already set by Set")
	}

	if mmList.defaultExpectation == nil {
		mmList.defaultExpectation = &DriverMockListExpectation{mock: mmList.mock}
	}
	mmList.defaultExpectation.results = &DriverMockListResults{p1, err}
	return mmList.mock
}

// Set uses given function f to mock the driver.Driver.List method
func (mmList *mDriverMockList) Set(f func(ctx context.Context, prefix string, limit int, startAfter string) (p1 kv.Page, err error)) *DriverMock {
	if mmList.defaultExpectation != nil {
		mmList.mock.t.Fatalf("Default expectation is already set for the driver.Driver.List method")
	}

	if len(mmList.expectations) > 0 {
		mmList.mock.t.Fatalf("Some expectations are already set for the driver.Driver.List method")
	}

	mmList.mock.funcList = f
	return mmList.mock
}

// When sets expectation for the driver.Driver.List which will trigger the result defined by the following
// Then helper
func (mmList *mDriverMockList) When(ctx context.Context, prefix string, limit int, startAfter string) *DriverMockListExpectation {
	if mmList.mock.funcList != nil {
		mmList.mock.t.Fatalf("DriverMock.List mock is already set by Set")
	}

	expectation := &DriverMockListExpectation{
		mock:   mmList.mock,
		params: &DriverMockListParams{ctx, prefix, limit, startAfter},
	}
	mmList.expectations = append(mmList.expectations, expectation)
	return expectation
}

// Then sets up driver.Driver.List return parameters for the expectation previously defined by the When method
func (e *DriverMockListExpectation) Then(p1 kv.Page, err error) *DriverMock {
	e.results = &DriverMockListResults{p1, err}
	return e.mock
}

// Times sets number of times driver.Driver.List should be invoked
func (mmList *mDriverMockList) Times(n uint64) *mDriverMockList {
	if n == 0 {
		mmList.mock.t.Fatalf("Times of DriverMock.List mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmList.expectedInvocations, n)
	return mmList
}

func (mmList *mDriverMockList) invocationsDone() bool {
	if len(mmList.expectations) == 0 && mmList.defaultExpectation == nil && mmList.mock.funcList == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmList.mock.afterListCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmList.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// List implements driver.Driver
func (mm_l *DriverMock) List(ctx context.Context, prefix string, limit int, startAfter string) (p1 kv.Page, err error) {
	mm_atomic.AddUint64(&mm_l.beforeListCounter, 1)
	defer mm_atomic.AddUint64(&mm_l.afterListCounter, 1)

	if mm_l.inspectFuncList != nil {
		mm_l.inspectFuncList(ctx, prefix, limit, startAfter)
	}

	mm_params := DriverMockListParams{ctx, prefix, limit, startAfter}

	// Record call args
	mm_l.ListMock.mutex.Lock()
	mm_l.ListMock.callArgs = append(mm_l.ListMock.callArgs, &mm_params)
	mm_l.ListMock.mutex.Unlock()

	for _, e := range mm_l.ListMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.p1, e.results.err
		}
	}

	if mm_l.ListMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_l.ListMock.defaultExpectation.Counter, 1)
		mm_want := mm_l.ListMock.defaultExpectation.params
		mm_got := DriverMockListParams{ctx, prefix, limit, startAfter}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_l.t.Errorf("DriverMock.List got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_l.ListMock.defaultExpectation.results
		if mm_results == nil {
			mm_l.t.Fatal("No results are set for the DriverMock.List")
		}
		return (*mm_results).p1, (*mm_results).err
	}
	if mm_l.funcList != nil {
		return mm_l.funcList(ctx, prefix, limit, startAfter)
	}
	mm_l.t.Fatalf("Unexpected call to DriverMock.List. %v %v %v %v", ctx, prefix, limit, startAfter)
	return
}

// ListAfterCounter returns a count of finished DriverMock.List invocations
func (mmList *DriverMock) ListAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.afterListCounter)
}

// ListBeforeCounter returns a count of DriverMock.List invocations
func (mmList *DriverMock) ListBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmList.beforeListCounter)
}

// Calls returns a list of arguments used in each call to DriverMock.List.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmList *mDriverMockList) Calls() []*DriverMockListParams {
	mmList.mutex.RLock()

	argCopy := make([]*DriverMockListParams, len(mmList.callArgs))
	copy(argCopy, mmList.callArgs)

	mmList.mutex.RUnlock()

	return argCopy
}

// MinimockListDone returns true if the count of the List invocations corresponds
// the number of defined expectations
func (m *DriverMock) MinimockListDone() bool {
	if m.ListMock.optional {
		return true
	}

	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListMock.invocationsDone()
}

// MinimockListInspect logs each unmet expectation
func (m *DriverMock) MinimockListInspect() {
	for _, e := range m.ListMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to DriverMock.List with params: %#v", *e.params)
		}
	}

	afterListCounter := mm_atomic.LoadUint64(&m.afterListCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListMock.defaultExpectation != nil && afterListCounter < 1 {
		if m.ListMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to DriverMock.List")
		} else {
			m.t.Errorf("Expected call to DriverMock.List with params: %#v", *m.ListMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcList != nil && afterListCounter < 1 {
		m.t.Error("Expected call to DriverMock.List")
	}

	if !m.ListMock.invocationsDone() && afterListCounter > 0 {
		m.t.Errorf("Expected %d calls to DriverMock.List but found %d calls",
			mm_atomic.LoadUint64(&m.ListMock.expectedInvocations), afterListCounter)
	}
}

type mDriverMockRemove struct {
	optional           bool
	mock               *DriverMock
	defaultExpectation *DriverMockRemoveExpectation
	expectations       []*DriverMockRemoveExpectation

	callArgs []*DriverMockRemoveParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// DriverMockRemoveExpectation specifies expectation struct of the driver.Driver.Remove
type DriverMockRemoveExpectation struct {
	mock    *DriverMock
	params  *DriverMockRemoveParams
	results *DriverMockRemoveResults
	Counter uint64
}

// DriverMockRemoveParams contains parameters of the driver.Driver.Remove
type DriverMockRemoveParams struct {
	ctx context.Context
	key string
}

// DriverMockRemoveResults contains results of the driver.Driver.Remove
type DriverMockRemoveResults struct {
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmRemove *mDriverMockRemove) Optional() *mDriverMockRemove {
	mmRemove.optional = true
	return mmRemove
}

// Expect sets up expected params for driver.Driver.Remove
func (mmRemove *mDriverMockRemove) Expect(ctx context.Context, key string) *mDriverMockRemove {
	if mmRemove.mock.funcRemove != nil {
		mmRemove.mock.t.Fatalf("DriverMock.Remove mock is already set by Set")
	}

	if mmRemove.defaultExpectation == nil {
		mmRemove.defaultExpectation = &DriverMockRemoveExpectation{}
	}

	mmRemove.defaultExpectation.params = &DriverMockRemoveParams{ctx, key}
	for _, e := range mmRemove.expectations {
		if minimock.Equal(e.params, mmRemove.defaultExpectation.params) {
			mmRemove.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRemove.defaultExpectation.params)
		}
	}

	return mmRemove
}

// Inspect accepts an inspector function that has same arguments as the driver.Driver.Remove
func (mmRemove *mDriverMockRemove) Inspect(f func(ctx context.Context, key string)) *mDriverMockRemove {
	if mmRemove.mock.inspectFuncRemove != nil {
		mmRemove.mock.t.Fatalf("Inspect function is already set for DriverMock.Remove")
	}

	mmRemove.mock.inspectFuncRemove = f

	return mmRemove
}

// Return sets up results that will be returned by driver.Driver.Remove
func (mmRemove *mDriverMockRemove) Return(err error) *DriverMock {
	if mmRemove.mock.funcRemove != nil {
		mmRemove.mock.t.Fatalf("DriverMock.Remove mock is already set by Set")
	}

	if mmRemove.defaultExpectation == nil {
		mmRemove.defaultExpectation = &DriverMockRemoveExpectation{mock: mmRemove.mock}
	}
	mmRemove.defaultExpectation.results = &DriverMockRemoveResults{err}
	return mmRemove.mock
}

// Set uses given function f to mock the driver.Driver.Remove method
func (mmRemove *mDriverMockRemove) Set(f func(ctx context.Context, key string) (err error)) *DriverMock {
	if mmRemove.defaultExpectation != nil {
		mmRemove.mock.t.Fatalf("Default expectation is already set for the driver.Driver.Remove method")
	}

	if len(mmRemove.expectations) > 0 {
		mmRemove.mock.t.Fatalf("Some expectations are already set for the driver.Driver.Remove method")
	}

	mmRemove.mock.funcRemove = f
	return mmRemove.mock
}

// When sets expectation for the driver.Driver.Remove which will trigger the result defined by the following
// Then helper
func (mmRemove *mDriverMockRemove) When(ctx context.Context, key string) *DriverMockRemoveExpectation {
	if mmRemove.mock.funcRemove != nil {
		mmRemove.mock.t.Fatalf("DriverMock.Remove mock is already set by Set")
	}

	expectation := &DriverMockRemoveExpectation{
		mock:   mmRemove.mock,
		params: &DriverMockRemoveParams{ctx, key},
	}
	mmRemove.expectations = append(mmRemove.expectations, expectation)
	return expectation
}

// Then sets up driver.Driver.Remove return parameters for the expectation previously defined by the When method
func (e *DriverMockRemoveExpectation) Then(err error) *DriverMock {
	e.results = &DriverMockRemoveResults{err}
	return e.mock
}

// Times sets number of times driver.Driver.Remove should be invoked
func (mmRemove *mDriverMockRemove) Times(n uint64) *mDriverMockRemove {
	if n == 0 {
		mmRemove.mock.t.Fatalf("Times of DriverMock.Remove mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmRemove.expectedInvocations, n)
	return mmRemove
}

func (mmRemove *mDriverMockRemove) invocationsDone() bool {
	if len(mmRemove.expectations) == 0 && mmRemove.defaultExpectation == nil && mmRemove.mock.funcRemove == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmRemove.mock.afterRemoveCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmRemove.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Remove implements driver.Driver
func (mm_r *DriverMock) Remove(ctx context.Context, key string) (err error) {
	mm_atomic.AddUint64(&mm_r.beforeRemoveCounter, 1)
	defer mm_atomic.AddUint64(&mm_r.afterRemoveCounter, 1)

	if mm_r.inspectFuncRemove != nil {
		mm_r.inspectFuncRemove(ctx, key)
	}

	mm_params := DriverMockRemoveParams{ctx, key}

	// Record call args
	mm_r.RemoveMock.mutex.Lock()
	mm_r.RemoveMock.callArgs = append(mm_r.RemoveMock.callArgs, &mm_params)
	mm_r.RemoveMock.mutex.Unlock()

	for _, e := range mm_r.RemoveMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mm_r.RemoveMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_r.RemoveMock.defaultExpectation.Counter, 1)
		mm_want := mm_r.RemoveMock.defaultExpectation.params
		mm_got := DriverMockRemoveParams{ctx, key}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_r.t.Errorf("DriverMock.Remove got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_r.RemoveMock.defaultExpectation.results
		if mm_results == nil {
			mm_r.t.Fatal("No results are set for the DriverMock.Remove")
		}
		return (*mm_results).err
	}
	if mm_r.funcRemove != nil {
		return mm_r.funcRemove(ctx, key)
	}
	mm_r.t.Fatalf("Unexpected call to DriverMock.Remove. %v %v", ctx, key)
	return
}

// RemoveAfterCounter returns a count of finished DriverMock.Remove invocations
func (mmRemove *DriverMock) RemoveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRemove.afterRemoveCounter)
}

// RemoveBeforeCounter returns a count of DriverMock.Remove invocations
func (mmRemove *DriverMock) RemoveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRemove.beforeRemoveCounter)
}

// Calls returns a list of arguments used in each call to DriverMock.Remove.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRemove *mDriverMockRemove) Calls() []*DriverMockRemoveParams {
	mmRemove.mutex.RLock()

	argCopy := make([]*DriverMockRemoveParams, len(mmRemove.callArgs))
	copy(argCopy, mmRemove.callArgs)

	mmRemove.mutex.RUnlock()

	return argCopy
}

// MinimockRemoveDone returns true if the count of the Remove invocations corresponds
// the number of defined expectations
func (m *DriverMock) MinimockRemoveDone() bool {
	if m.RemoveMock.optional {
		return true
	}

	for _, e := range m.RemoveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.RemoveMock.invocationsDone()
}

// MinimockRemoveInspect logs each unmet expectation
func (m *DriverMock) MinimockRemoveInspect() {
	for _, e := range m.RemoveMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to DriverMock.Remove with params: %#v", *e.params)
		}
	}

	afterRemoveCounter := mm_atomic.LoadUint64(&m.afterRemoveCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.RemoveMock.defaultExpectation != nil && afterRemoveCounter < 1 {
		if m.RemoveMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to DriverMock.Remove")
		} else {
			m.t.Errorf("Expected call to DriverMock.Remove with params: %#v", *m.RemoveMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRemove != nil && afterRemoveCounter < 1 {
		m.t.Error("Expected call to DriverMock.Remove")
	}

	if !m.RemoveMock.invocationsDone() && afterRemoveCounter > 0 {
		m.t.Errorf("Expected %d calls to DriverMock.Remove but found %d calls",
			mm_atomic.LoadUint64(&m.RemoveMock.expectedInvocations), afterRemoveCounter)
	}
}

type mDriverMockStore struct {
	optional           bool
	mock               *DriverMock
	defaultExpectation *DriverMockStoreExpectation
	expectations       []*DriverMockStoreExpectation

	callArgs []*DriverMockStoreParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// DriverMockStoreExpectation specifies expectation struct of the driver.Driver.Store
type DriverMockStoreExpectation struct {
	mock    *DriverMock
	params  *DriverMockStoreParams
	results *DriverMockStoreResults
	Counter uint64
}

// DriverMockStoreParams contains parameters of the driver.Driver.Store
type DriverMockStoreParams struct {
	ctx   context.Context
	key   string
	entry kv.Entry
}

// DriverMockStoreResults contains results of the driver.Driver.Store
type DriverMockStoreResults struct {
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmStore *mDriverMockStore) Optional() *mDriverMockStore {
	mmStore.optional = true
	return mmStore
}

// Expect sets up expected params for driver.Driver.Store
func (mmStore *mDriverMockStore) Expect(ctx context.Context, key string, entry kv.Entry) *mDriverMockStore {
	if mmStore.mock.funcStore != nil {
		mmStore.mock.t.Fatalf("DriverMock.Store mock is already set by Set")
	}

	if mmStore.defaultExpectation == nil {
		mmStore.defaultExpectation = &DriverMockStoreExpectation{}
	}

	mmStore.defaultExpectation.params = &DriverMockStoreParams{ctx, key, entry}
	for _, e := range mmStore.expectations {
		if minimock.Equal(e.params, mmStore.defaultExpectation.params) {
			mmStore.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmStore.defaultExpectation.params)
		}
	}

	return mmStore
}

// Inspect accepts an inspector function that has same arguments as the driver.Driver.Store
func (mmStore *mDriverMockStore) Inspect(f func(ctx context.Context, key string, entry kv.Entry)) *mDriverMockStore {
	if mmStore.mock.inspectFuncStore != nil {
		mmStore.mock.t.Fatalf("Inspect function is already set for DriverMock.Store")
	}

	mmStore.mock.inspectFuncStore = f

	return mmStore
}

// Return sets up results that will be returned by driver.Driver.Store
func (mmStore *mDriverMockStore) Return(err error) *DriverMock {
	if mmStore.mock.funcStore != nil {
		mmStore.mock.t.Fatalf("DriverMock.Store mock is already set by Set")
	}

	if mmStore.defaultExpectation == nil {
		mmStore.defaultExpectation = &DriverMockStoreExpectation{mock: mmStore.mock}
	}
	mmStore.defaultExpectation.results = &DriverMockStoreResults{err}
	return mmStore.mock
}

// Set uses given function f to mock the driver.Driver.Store method
func (mmStore *mDriverMockStore) Set(f func(ctx context.Context, key string, entry kv.Entry) (err error)) *DriverMock {
	if mmStore.defaultExpectation != nil {
		mmStore.mock.t.Fatalf("Default expectation is already set for the driver.Driver.Store method")
	}

	if len(mmStore.expectations) > 0 {
		mmStore.mock.t.Fatalf("Some expectations are already set for the driver.Driver.Store method")
	}

	mmStore.mock.funcStore = f
	return mmStore.mock
}

// When sets expectation for the driver.Driver.Store which will trigger the result defined by the following
// Then helper
func (mmStore *mDriverMockStore) When(ctx context.Context, key string, entry kv.Entry) *DriverMockStoreExpectation {
	if mmStore.mock.funcStore != nil {
		mmStore.mock.t.Fatalf("DriverMock.Store mock is already set by Set")
	}

	expectation := &DriverMockStoreExpectation{
		mock:   mmStore.mock,
		params: &DriverMockStoreParams{ctx, key, entry},
	}
	mmStore.expectations = append(mmStore.expectations, expectation)
	return expectation
}

// Then sets up driver.Driver.Store return parameters for the expectation previously defined by the When method
func (e *DriverMockStoreExpectation) Then(err error) *DriverMock {
	e.results = &DriverMockStoreResults{err}
	return e.mock
}

// Times sets number of times driver.Driver.Store should be invoked
func (mmStore *mDriverMockStore) Times(n uint64) *mDriverMockStore {
	if n == 0 {
		mmStore.mock.t.Fatalf("Times of DriverMock.Store mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmStore.expectedInvocations, n)
	return mmStore
}

func (mmStore *mDriverMockStore) invocationsDone() bool {
	if len(mmStore.expectations) == 0 && mmStore.defaultExpectation == nil && mmStore.mock.funcStore == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmStore.mock.afterStoreCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmStore.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// Store implements driver.Driver
func (mm_s *DriverMock) Store(ctx context.Context, key string, entry kv.Entry) (err error) {
	mm_atomic.AddUint64(&mm_s.beforeStoreCounter, 1)
	defer mm_atomic.AddUint64(&mm_s.afterStoreCounter, 1)

	if mm_s.inspectFuncStore != nil {
		mm_s.inspectFuncStore(ctx, key, entry)
	}

	mm_params := DriverMockStoreParams{ctx, key, entry}

	// Record call args
	mm_s.StoreMock.mutex.Lock()
	mm_s.StoreMock.callArgs = append(mm_s.StoreMock.callArgs, &mm_params)
	mm_s.StoreMock.mutex.Unlock()

	for _, e := range mm_s.StoreMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mm_s.StoreMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_s.StoreMock.defaultExpectation.Counter, 1)
		mm_want := mm_s.StoreMock.defaultExpectation.params
		mm_got := DriverMockStoreParams{ctx, key, entry}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_s.t.Errorf("DriverMock.Store got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_s.StoreMock.defaultExpectation.results
		if mm_results == nil {
			mm_s.t.Fatal("No results are set for the DriverMock.Store")
		}
		return (*mm_results).err
	}
	if mm_s.funcStore != nil {
		return mm_s.funcStore(ctx, key, entry)
	}
	mm_s.t.Fatalf("Unexpected call to DriverMock.Store. %v %v %v", ctx, key, entry)
	return
}

// StoreAfterCounter returns a count of finished DriverMock.Store invocations
func (mmStore *DriverMock) StoreAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmStore.afterStoreCounter)
}

// StoreBeforeCounter returns a count of DriverMock.Store invocations
func (mmStore *DriverMock) StoreBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmStore.beforeStoreCounter)
}

// Calls returns a list of arguments used in each call to DriverMock.Store.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmStore *mDriverMockStore) Calls() []*DriverMockStoreParams {
	mmStore.mutex.RLock()

	argCopy := make([]*DriverMockStoreParams, len(mmStore.callArgs))
	copy(argCopy, mmStore.callArgs)

	mmStore.mutex.RUnlock()

	return argCopy
}

// MinimockStoreDone returns true if the count of the Store invocations corresponds
// the number of defined expectations
func (m *DriverMock) MinimockStoreDone() bool {
	if m.StoreMock.optional {
		return true
	}

	for _, e := range m.StoreMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.StoreMock.invocationsDone()
}

// MinimockStoreInspect logs each unmet expectation
func (m *DriverMock) MinimockStoreInspect() {
	for _, e := range m.StoreMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to DriverMock.Store with params: %#v", *e.params)
		}
	}

	afterStoreCounter := mm_atomic.LoadUint64(&m.afterStoreCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.StoreMock.defaultExpectation != nil && afterStoreCounter < 1 {
		if m.StoreMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to DriverMock.Store")
		} else {
			m.t.Errorf("Expected call to DriverMock.Store with params: %#v", *m.StoreMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcStore != nil && afterStoreCounter < 1 {
		m.t.Error("Expected call to DriverMock.Store")
	}

	if !m.StoreMock.invocationsDone() && afterStoreCounter > 0 {
		m.t.Errorf("Expected %d calls to DriverMock.Store but found %d calls",
			mm_atomic.LoadUint64(&m.StoreMock.expectedInvocations), afterStoreCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *DriverMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockFetchInspect()
			m.MinimockListInspect()
			m.MinimockRemoveInspect()
			m.MinimockStoreInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *DriverMock) MinimockWait(timeout mm_time.Duration) {
	timeoutCh := mm_time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-mm_time.After(10 * mm_time.Millisecond):
		}
	}
}

func (m *DriverMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockFetchDone() &&
		m.MinimockListDone() &&
		m.MinimockRemoveDone() &&
		m.MinimockStoreDone()
}
