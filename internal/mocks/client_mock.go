package mocks

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	mm_time "time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gojuno/minimock/v3"
)

// ClientMock implements s3.Client
type ClientMock struct {
	t          minimock.Tester
	finishOnce sync.Once

	funcCreateBucket          func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (pp1 *s3.CreateBucketOutput, err error)
	inspectFuncCreateBucket   func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options))
	afterCreateBucketCounter  uint64
	beforeCreateBucketCounter uint64
	CreateBucketMock          mClientMockCreateBucket

	funcDeleteObject          func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.DeleteObjectOutput, err error)
	inspectFuncDeleteObject   func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options))
	afterDeleteObjectCounter  uint64
	beforeDeleteObjectCounter uint64
	DeleteObjectMock          mClientMockDeleteObject

	funcGetObject          func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.GetObjectOutput, err error)
	inspectFuncGetObject   func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options))
	afterGetObjectCounter  uint64
	beforeGetObjectCounter uint64
	GetObjectMock          mClientMockGetObject

	funcHeadBucket          func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (pp1 *s3.HeadBucketOutput, err error)
	inspectFuncHeadBucket   func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options))
	afterHeadBucketCounter  uint64
	beforeHeadBucketCounter uint64
	HeadBucketMock          mClientMockHeadBucket

	funcHeadObject          func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.HeadObjectOutput, err error)
	inspectFuncHeadObject   func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options))
	afterHeadObjectCounter  uint64
	beforeHeadObjectCounter uint64
	HeadObjectMock          mClientMockHeadObject

	funcListObjectsV2          func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (pp1 *s3.ListObjectsV2Output, err error)
	inspectFuncListObjectsV2   func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options))
	afterListObjectsV2Counter  uint64
	beforeListObjectsV2Counter uint64
	ListObjectsV2Mock          mClientMockListObjectsV2

	funcPutObject          func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.PutObjectOutput, err error)
	inspectFuncPutObject   func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options))
	afterPutObjectCounter  uint64
	beforePutObjectCounter uint64
	PutObjectMock          mClientMockPutObject
}

// NewClientMock returns a mock for s3.Client
func NewClientMock(t minimock.Tester) *ClientMock {
	m := &ClientMock{t: t}

	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CreateBucketMock = mClientMockCreateBucket{mock: m}
	m.CreateBucketMock.callArgs = []*ClientMockCreateBucketParams{}

	m.DeleteObjectMock = mClientMockDeleteObject{mock: m}
	m.DeleteObjectMock.callArgs = []*ClientMockDeleteObjectParams{}

	m.GetObjectMock = mClientMockGetObject{mock: m}
	m.GetObjectMock.callArgs = []*ClientMockGetObjectParams{}

	m.HeadBucketMock = mClientMockHeadBucket{mock: m}
	m.HeadBucketMock.callArgs = []*ClientMockHeadBucketParams{}

	m.HeadObjectMock = mClientMockHeadObject{mock: m}
	m.HeadObjectMock.callArgs = []*ClientMockHeadObjectParams{}

	m.ListObjectsV2Mock = mClientMockListObjectsV2{mock: m}
	m.ListObjectsV2Mock.callArgs = []*ClientMockListObjectsV2Params{}

	m.PutObjectMock = mClientMockPutObject{mock: m}
	m.PutObjectMock.callArgs = []*ClientMockPutObjectParams{}

	t.Cleanup(m.MinimockFinish)

	return m
}

type mClientMockCreateBucket struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockCreateBucketExpectation
	expectations       []*ClientMockCreateBucketExpectation

	callArgs []*ClientMockCreateBucketParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockCreateBucketExpectation specifies expectation struct of the s3.Client.CreateBucket
type ClientMockCreateBucketExpectation struct {
	mock    *ClientMock
	params  *ClientMockCreateBucketParams
	results *ClientMockCreateBucketResults
	Counter uint64
}

// ClientMockCreateBucketParams contains parameters of the s3.Client.CreateBucket
type ClientMockCreateBucketParams struct {
	ctx    context.Context
	params *s3.CreateBucketInput
	optFns []func(*s3.Options)
}

// ClientMockCreateBucketResults contains results of the s3.Client.CreateBucket
type ClientMockCreateBucketResults struct {
	pp1 *s3.CreateBucketOutput
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmCreateBucket *mClientMockCreateBucket) Optional() *mClientMockCreateBucket {
	mmCreateBucket.optional = true
	return mmCreateBucket
}

// Expect sets up expected params for s3.Client.CreateBucket
func (mmCreateBucket *mClientMockCreateBucket) Expect(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) *mClientMockCreateBucket {
	if mmCreateBucket.mock.funcCreateBucket != nil {
		mmCreateBucket.mock.t.Fatalf("ClientMock.CreateBucket mock is already set by Set")
	}

	if mmCreateBucket.defaultExpectation == nil {
		mmCreateBucket.defaultExpectation = &ClientMockCreateBucketExpectation{}
	}

	mmCreateBucket.defaultExpectation.params = &ClientMockCreateBucketParams{ctx, params, optFns}
	for _, e := range mmCreateBucket.expectations {
		if minimock.Equal(e.params, mmCreateBucket.defaultExpectation.params) {
			mmCreateBucket.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCreateBucket.defaultExpectation.params)
		}
	}

	return mmCreateBucket
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.CreateBucket
func (mmCreateBucket *mClientMockCreateBucket) Inspect(f func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options))) *mClientMockCreateBucket {
	if mmCreateBucket.mock.inspectFuncCreateBucket != nil {
		mmCreateBucket.mock.t.Fatalf("Inspect function is already set for ClientMock.CreateBucket")
	}

	mmCreateBucket.mock.inspectFuncCreateBucket = f

	return mmCreateBucket
}

// Return sets up results that will be returned by s3.Client.CreateBucket
func (mmCreateBucket *mClientMockCreateBucket) Return(pp1 *s3.CreateBucketOutput, err error) *ClientMock {
	if mmCreateBucket.mock.funcCreateBucket != nil {
		mmCreateBucket.mock.t.Fatalf("ClientMock.CreateBucket mock is already set by Set")
	}

	if mmCreateBucket.defaultExpectation == nil {
		mmCreateBucket.defaultExpectation = &ClientMockCreateBucketExpectation{mock: mmCreateBucket.mock}
	}
	mmCreateBucket.defaultExpectation.results = &ClientMockCreateBucketResults{pp1, err}
	return mmCreateBucket.mock
}

// Set uses given function f to mock the s3.Client.CreateBucket method
func (mmCreateBucket *mClientMockCreateBucket) Set(f func(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (pp1 *s3.CreateBucketOutput, err error)) *ClientMock {
	if mmCreateBucket.defaultExpectation != nil {
		mmCreateBucket.mock.t.Fatalf("Default expectation is already set for the s3.Client.CreateBucket method")
	}

	if len(mmCreateBucket.expectations) > 0 {
		mmCreateBucket.mock.t.Fatalf("Some expectations are already set for the s3.Client.CreateBucket method")
	}

	mmCreateBucket.mock.funcCreateBucket = f
	return mmCreateBucket.mock
}

// When sets expectation for the s3.Client.CreateBucket which will trigger the result defined by the following
// Then helper
func (mmCreateBucket *mClientMockCreateBucket) When(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) *ClientMockCreateBucketExpectation {
	if mmCreateBucket.mock.funcCreateBucket != nil {
		mmCreateBucket.mock.t.Fatalf("ClientMock.CreateBucket mock is already set by Set")
	}

	expectation := &ClientMockCreateBucketExpectation{
		mock:   mmCreateBucket.mock,
		params: &ClientMockCreateBucketParams{ctx, params, optFns},
	}
	mmCreateBucket.expectations = append(mmCreateBucket.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.CreateBucket return parameters for the expectation previously defined by the When method
func (e *ClientMockCreateBucketExpectation) Then(pp1 *s3.CreateBucketOutput, err error) *ClientMock {
	e.results = &ClientMockCreateBucketResults{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.CreateBucket should be invoked
func (mmCreateBucket *mClientMockCreateBucket) Times(n uint64) *mClientMockCreateBucket {
	if n == 0 {
		mmCreateBucket.mock.t.Fatalf("Times of ClientMock.CreateBucket mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmCreateBucket.expectedInvocations, n)
	return mmCreateBucket
}

func (mmCreateBucket *mClientMockCreateBucket) invocationsDone() bool {
	if len(mmCreateBucket.expectations) == 0 && mmCreateBucket.defaultExpectation == nil && mmCreateBucket.mock.funcCreateBucket == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmCreateBucket.mock.afterCreateBucketCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmCreateBucket.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// CreateBucket implements s3.Client
func (mm_c *ClientMock) CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (pp1 *s3.CreateBucketOutput, err error) {
	mm_atomic.AddUint64(&mm_c.beforeCreateBucketCounter, 1)
	defer mm_atomic.AddUint64(&mm_c.afterCreateBucketCounter, 1)

	if mm_c.inspectFuncCreateBucket != nil {
		mm_c.inspectFuncCreateBucket(ctx, params, optFns...)
	}

	mm_params := ClientMockCreateBucketParams{ctx, params, optFns}

	// Record call args
	mm_c.CreateBucketMock.mutex.Lock()
	mm_c.CreateBucketMock.callArgs = append(mm_c.CreateBucketMock.callArgs, &mm_params)
	mm_c.CreateBucketMock.mutex.Unlock()

	for _, e := range mm_c.CreateBucketMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_c.CreateBucketMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_c.CreateBucketMock.defaultExpectation.Counter, 1)
		mm_want := mm_c.CreateBucketMock.defaultExpectation.params
		mm_got := ClientMockCreateBucketParams{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_c.t.Errorf("ClientMock.CreateBucket got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_c.CreateBucketMock.defaultExpectation.results
		if mm_results == nil {
			mm_c.t.Fatal("No results are set for the ClientMock.CreateBucket")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_c.funcCreateBucket != nil {
		return mm_c.funcCreateBucket(ctx, params, optFns...)
	}
	mm_c.t.Fatalf("Unexpected call to ClientMock.CreateBucket. %v %v %v", ctx, params, optFns)
	return
}

// CreateBucketAfterCounter returns a count of finished ClientMock.CreateBucket invocations
func (mmCreateBucket *ClientMock) CreateBucketAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCreateBucket.afterCreateBucketCounter)
}

// CreateBucketBeforeCounter returns a count of ClientMock.CreateBucket invocations
func (mmCreateBucket *ClientMock) CreateBucketBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCreateBucket.beforeCreateBucketCounter)
}

// Calls returns a list of arguments used in each call to ClientMock.CreateBucket.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCreateBucket *mClientMockCreateBucket) Calls() []*ClientMockCreateBucketParams {
	mmCreateBucket.mutex.RLock()

	argCopy := make([]*ClientMockCreateBucketParams, len(mmCreateBucket.callArgs))
	copy(argCopy, mmCreateBucket.callArgs)

	mmCreateBucket.mutex.RUnlock()

	return argCopy
}

// MinimockCreateBucketDone returns true if the count of the CreateBucket invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockCreateBucketDone() bool {
	if m.CreateBucketMock.optional {
		return true
	}

	for _, e := range m.CreateBucketMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.CreateBucketMock.invocationsDone()
}

// MinimockCreateBucketInspect logs each unmet expectation
func (m *ClientMock) MinimockCreateBucketInspect() {
	for _, e := range m.CreateBucketMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.CreateBucket with params: %#v", *e.params)
		}
	}

	afterCreateBucketCounter := mm_atomic.LoadUint64(&m.afterCreateBucketCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.CreateBucketMock.defaultExpectation != nil && afterCreateBucketCounter < 1 {
		if m.CreateBucketMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.CreateBucket")
		} else {
			m.t.Errorf("Expected call to ClientMock.CreateBucket with params: %#v", *m.CreateBucketMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCreateBucket != nil && afterCreateBucketCounter < 1 {
		m.t.Error("Expected call to ClientMock.CreateBucket")
	}

	if !m.CreateBucketMock.invocationsDone() && afterCreateBucketCounter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.CreateBucket but found %d calls",
			mm_atomic.LoadUint64(&m.CreateBucketMock.expectedInvocations), afterCreateBucketCounter)
	}
}

type mClientMockDeleteObject struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockDeleteObjectExpectation
	expectations       []*ClientMockDeleteObjectExpectation

	callArgs []*ClientMockDeleteObjectParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockDeleteObjectExpectation specifies expectation struct of the s3.Client.DeleteObject
type ClientMockDeleteObjectExpectation struct {
	mock    *ClientMock
	params  *ClientMockDeleteObjectParams
	results *ClientMockDeleteObjectResults
	Counter uint64
}

// ClientMockDeleteObjectParams contains parameters of the s3.Client.DeleteObject
type ClientMockDeleteObjectParams struct {
	ctx    context.Context
	params *s3.DeleteObjectInput
	optFns []func(*s3.Options)
}

// ClientMockDeleteObjectResults contains results of the s3.Client.DeleteObject
type ClientMockDeleteObjectResults struct {
	pp1 *s3.DeleteObjectOutput
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmDeleteObject *mClientMockDeleteObject) Optional() *mClientMockDeleteObject {
	mmDeleteObject.optional = true
	return mmDeleteObject
}

// Expect sets up expected params for s3.Client.DeleteObject
func (mmDeleteObject *mClientMockDeleteObject) Expect(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) *mClientMockDeleteObject {
	if mmDeleteObject.mock.funcDeleteObject != nil {
		mmDeleteObject.mock.t.Fatalf("ClientMock.DeleteObject mock is already set by Set")
	}

	if mmDeleteObject.defaultExpectation == nil {
		mmDeleteObject.defaultExpectation = &ClientMockDeleteObjectExpectation{}
	}

	mmDeleteObject.defaultExpectation.params = &ClientMockDeleteObjectParams{ctx, params, optFns}
	for _, e := range mmDeleteObject.expectations {
		if minimock.Equal(e.params, mmDeleteObject.defaultExpectation.params) {
			mmDeleteObject.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmDeleteObject.defaultExpectation.params)
		}
	}

	return mmDeleteObject
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.DeleteObject
func (mmDeleteObject *mClientMockDeleteObject) Inspect(f func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options))) *mClientMockDeleteObject {
	if mmDeleteObject.mock.inspectFuncDeleteObject != nil {
		mmDeleteObject.mock.t.Fatalf("Inspect function is already set for ClientMock.DeleteObject")
	}

	mmDeleteObject.mock.inspectFuncDeleteObject = f

	return mmDeleteObject
}

// Return sets up results that will be returned by s3.Client.DeleteObject
func (mmDeleteObject *mClientMockDeleteObject) Return(pp1 *s3.DeleteObjectOutput, err error) *ClientMock {
	if mmDeleteObject.mock.funcDeleteObject != nil {
		mmDeleteObject.mock.t.Fatalf("ClientMock.DeleteObject mock is already set by Set")
	}

	if mmDeleteObject.defaultExpectation == nil {
		mmDeleteObject.defaultExpectation = &ClientMockDeleteObjectExpectation{mock: mmDeleteObject.mock}
	}
	mmDeleteObject.defaultExpectation.results = &ClientMockDeleteObjectResults{pp1, err}
	return mmDeleteObject.mock
}

// Set uses given function f to mock the s3.Client.DeleteObject method
func (mmDeleteObject *mClientMockDeleteObject) Set(f func(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.DeleteObjectOutput, err error)) *ClientMock {
	if mmDeleteObject.defaultExpectation != nil {
		mmDeleteObject.mock.t.Fatalf("Default expectation is already set for the s3.Client.DeleteObject method")
	}

	if len(mmDeleteObject.expectations) > 0 {
		mmDeleteObject.mock.t.Fatalf("Some expectations are already set for the s3.Client.DeleteObject method")
	}

	mmDeleteObject.mock.funcDeleteObject = f
	return mmDeleteObject.mock
}

// When sets expectation for the s3.Client.DeleteObject which will trigger the result defined by the following
// Then helper
func (mmDeleteObject *mClientMockDeleteObject) When(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) *ClientMockDeleteObjectExpectation {
	if mmDeleteObject.mock.funcDeleteObject != nil {
		mmDeleteObject.mock.t.Fatalf("ClientMock.DeleteObject mock is already set by Set")
	}

	expectation := &ClientMockDeleteObjectExpectation{
		mock:   mmDeleteObject.mock,
		params: &ClientMockDeleteObjectParams{ctx, params, optFns},
	}
	mmDeleteObject.expectations = append(mmDeleteObject.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.DeleteObject return parameters for the expectation previously defined by the When method
func (e *ClientMockDeleteObjectExpectation) Then(pp1 *s3.DeleteObjectOutput, err error) *ClientMock {
	e.results = &ClientMockDeleteObjectResults{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.DeleteObject should be invoked
func (mmDeleteObject *mClientMockDeleteObject) Times(n uint64) *mClientMockDeleteObject {
	if n == 0 {
		mmDeleteObject.mock.t.Fatalf("Times of ClientMock.DeleteObject mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmDeleteObject.expectedInvocations, n)
	return mmDeleteObject
}

func (mmDeleteObject *mClientMockDeleteObject) invocationsDone() bool {
	if len(mmDeleteObject.expectations) == 0 && mmDeleteObject.defaultExpectation == nil && mmDeleteObject.mock.funcDeleteObject == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmDeleteObject.mock.afterDeleteObjectCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmDeleteObject.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// DeleteObject implements s3.Client
func (mm_d *ClientMock) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.DeleteObjectOutput, err error) {
	mm_atomic.AddUint64(&mm_d.beforeDeleteObjectCounter, 1)
	defer mm_atomic.AddUint64(&mm_d.afterDeleteObjectCounter, 1)

	if mm_d.inspectFuncDeleteObject != nil {
		mm_d.inspectFuncDeleteObject(ctx, params, optFns...)
	}

	mm_params := ClientMockDeleteObjectParams{ctx, params, optFns}

	// Record call args
	mm_d.DeleteObjectMock.mutex.Lock()
	mm_d.DeleteObjectMock.callArgs = append(mm_d.DeleteObjectMock.callArgs, &mm_params)
	mm_d.DeleteObjectMock.mutex.Unlock()

	for _, e := range mm_d.DeleteObjectMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_d.DeleteObjectMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_d.DeleteObjectMock.defaultExpectation.Counter, 1)
		mm_want := mm_d.DeleteObjectMock.defaultExpectation.params
		mm_got := ClientMockDeleteObjectParams{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_d.t.Errorf("ClientMock.DeleteObject got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_d.DeleteObjectMock.defaultExpectation.results
		if mm_results == nil {
			mm_d.t.Fatal("No results are set for the ClientMock.DeleteObject")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_d.funcDeleteObject != nil {
		return mm_d.funcDeleteObject(ctx, params, optFns...)
	}
	mm_d.t.Fatalf("Unexpected call to ClientMock.DeleteObject. %v %v %v", ctx, params, optFns)
	return
}

// DeleteObjectAfterCounter returns a count of finished ClientMock.DeleteObject invocations
func (mmDeleteObject *ClientMock) DeleteObjectAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDeleteObject.afterDeleteObjectCounter)
}

// DeleteObjectBeforeCounter returns a count of ClientMock.DeleteObject invocations
func (mmDeleteObject *ClientMock) DeleteObjectBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmDeleteObject.beforeDeleteObjectCounter)
}

// Calls returns a list of arguments used in each call to ClientMock.DeleteObject.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmDeleteObject *mClientMockDeleteObject) Calls() []*ClientMockDeleteObjectParams {
	mmDeleteObject.mutex.RLock()

	argCopy := make([]*ClientMockDeleteObjectParams, len(mmDeleteObject.callArgs))
	copy(argCopy, mmDeleteObject.callArgs)

	mmDeleteObject.mutex.RUnlock()

	return argCopy
}

// MinimockDeleteObjectDone returns true if the count of the DeleteObject invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockDeleteObjectDone() bool {
	if m.DeleteObjectMock.optional {
		return true
	}

	for _, e := range m.DeleteObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.DeleteObjectMock.invocationsDone()
}

// MinimockDeleteObjectInspect logs each unmet expectation
func (m *ClientMock) MinimockDeleteObjectInspect() {
	for _, e := range m.DeleteObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.DeleteObject with params: %#v", *e.params)
		}
	}

	afterDeleteObjectCounter := mm_atomic.LoadUint64(&m.afterDeleteObjectCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.DeleteObjectMock.defaultExpectation != nil && afterDeleteObjectCounter < 1 {
		if m.DeleteObjectMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.DeleteObject")
		} else {
			m.t.Errorf("Expected call to ClientMock.DeleteObject with params: %#v", *m.DeleteObjectMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcDeleteObject != nil && afterDeleteObjectCounter < 1 {
		m.t.Error("Expected call to ClientMock.DeleteObject")
	}

	if !m.DeleteObjectMock.invocationsDone() && afterDeleteObjectCounter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.DeleteObject but found %d calls",
			mm_atomic.LoadUint64(&m.DeleteObjectMock.expectedInvocations), afterDeleteObjectCounter)
	}
}

type mClientMockGetObject struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockGetObjectExpectation
	expectations       []*ClientMockGetObjectExpectation

	callArgs []*ClientMockGetObjectParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockGetObjectExpectation specifies expectation struct of the s3.Client.GetObject
type ClientMockGetObjectExpectation struct {
	mock    *ClientMock
	params  *ClientMockGetObjectParams
	results *ClientMockGetObjectResults
	Counter uint64
}

// ClientMockGetObjectParams contains parameters of the s3.Client.GetObject
type ClientMockGetObjectParams struct {
	ctx    context.Context
	params *s3.GetObjectInput
	optFns []func(*s3.Options)
}

// ClientMockGetObjectResults contains results of the s3.Client.GetObject
type ClientMockGetObjectResults struct {
	pp1 *s3.GetObjectOutput
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmGetObject *mClientMockGetObject) Optional() *mClientMockGetObject {
	mmGetObject.optional = true
	return mmGetObject
}

// Expect sets up expected params for s3.Client.GetObject
func (mmGetObject *mClientMockGetObject) Expect(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) *mClientMockGetObject {
	if mmGetObject.mock.funcGetObject != nil {
		mmGetObject.mock.t.Fatalf("ClientMock.GetObject mock is already set by Set")
	}

	if mmGetObject.defaultExpectation == nil {
		mmGetObject.defaultExpectation = &ClientMockGetObjectExpectation{}
	}

	mmGetObject.defaultExpectation.params = &ClientMockGetObjectParams{ctx, params, optFns}
	for _, e := range mmGetObject.expectations {
		if minimock.Equal(e.params, mmGetObject.defaultExpectation.params) {
			mmGetObject.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetObject.defaultExpectation.params)
		}
	}

	return mmGetObject
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.GetObject
func (mmGetObject *mClientMockGetObject) Inspect(f func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options))) *mClientMockGetObject {
	if mmGetObject.mock.inspectFuncGetObject != nil {
		mmGetObject.mock.t.Fatalf("Inspect function is already set for ClientMock.GetObject")
	}

	mmGetObject.mock.inspectFuncGetObject = f

	return mmGetObject
}

// Return sets up results that will be returned by s3.Client.GetObject
func (mmGetObject *mClientMockGetObject) Return(pp1 *s3.GetObjectOutput, err error) *ClientMock {
	if mmGetObject.mock.funcGetObject != nil {
		mmGetObject.mock.t.Fatalf("ClientMock.GetObject mock is already set by Set")
	}

	if mmGetObject.defaultExpectation == nil {
		mmGetObject.defaultExpectation = &ClientMockGetObjectExpectation{mock: mmGetObject.mock}
	}
	mmGetObject.defaultExpectation.results = &ClientMockGetObjectResults{pp1, err}
	return mmGetObject.mock
}

// Set uses given function f to mock the s3.Client.GetObject method
func (mmGetObject *mClientMockGetObject) Set(f func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.GetObjectOutput, err error)) *ClientMock {
	if mmGetObject.defaultExpectation != nil {
		mmGetObject.mock.t.Fatalf("Default expectation is already set for the s3.Client.GetObject method")
	}

	if len(mmGetObject.expectations) > 0 {
		mmGetObject.mock.t.Fatalf("Some expectations are already set for the s3.Client.GetObject method")
	}

	mmGetObject.mock.funcGetObject = f
	return mmGetObject.mock
}

// When sets expectation for the s3.Client.GetObject which will trigger the result defined by the following
// Then helper
func (mmGetObject *mClientMockGetObject) When(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) *ClientMockGetObjectExpectation {
	if mmGetObject.mock.funcGetObject != nil {
		mmGetObject.mock.t.Fatalf("ClientMock.GetObject mock is already set by Set")
	}

	expectation := &ClientMockGetObjectExpectation{
		mock:   mmGetObject.mock,
		params: &ClientMockGetObjectParams{ctx, params, optFns},
	}
	mmGetObject.expectations = append(mmGetObject.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.GetObject return parameters for the expectation previously defined by the When method
func (e *ClientMockGetObjectExpectation) Then(pp1 *s3.GetObjectOutput, err error) *ClientMock {
	e.results = &ClientMockGetObjectResults{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.GetObject should be invoked
func (mmGetObject *mClientMockGetObject) Times(n uint64) *mClientMockGetObject {
	if n == 0 {
		mmGetObject.mock.t.Fatalf("Times of ClientMock.GetObject mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmGetObject.expectedInvocations, n)
	return mmGetObject
}

func (mmGetObject *mClientMockGetObject) invocationsDone() bool {
	if len(mmGetObject.expectations) == 0 && mmGetObject.defaultExpectation == nil && mmGetObject.mock.funcGetObject == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmGetObject.mock.afterGetObjectCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmGetObject.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// GetObject implements s3.Client
func (mm_g *ClientMock) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.GetObjectOutput, err error) {
	mm_atomic.AddUint64(&mm_g.beforeGetObjectCounter, 1)
	defer mm_atomic.AddUint64(&mm_g.afterGetObjectCounter, 1)

	if mm_g.inspectFuncGetObject != nil {
		mm_g.inspectFuncGetObject(ctx, params, optFns...)
	}

	mm_params := ClientMockGetObjectParams{ctx, params, optFns}

	// Record call args
	mm_g.GetObjectMock.mutex.Lock()
	mm_g.GetObjectMock.callArgs = append(mm_g.GetObjectMock.callArgs, &mm_params)
	mm_g.GetObjectMock.mutex.Unlock()

	for _, e := range mm_g.GetObjectMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_g.GetObjectMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_g.GetObjectMock.defaultExpectation.Counter, 1)
		mm_want := mm_g.GetObjectMock.defaultExpectation.params
		mm_got := ClientMockGetObjectParams{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_g.t.Errorf("ClientMock.GetObject got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_g.GetObjectMock.defaultExpectation.results
		if mm_results == nil {
			mm_g.t.Fatal("No results are set for the ClientMock.GetObject")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_g.funcGetObject != nil {
		return mm_g.funcGetObject(ctx, params, optFns...)
	}
	mm_g.t.Fatalf("Unexpected call to ClientMock.GetObject. %v %v %v", ctx, params, optFns)
	return
}

// GetObjectAfterCounter returns a count of finished ClientMock.GetObject invocations
func (mmGetObject *ClientMock) GetObjectAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetObject.afterGetObjectCounter)
}

// GetObjectBeforeCounter returns a count of ClientMock.GetObject invocations
func (mmGetObject *ClientMock) GetObjectBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetObject.beforeGetObjectCounter)
}

// Calls returns a list of arguments used in each call to ClientMock.GetObject.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetObject *mClientMockGetObject) Calls() []*ClientMockGetObjectParams {
	mmGetObject.mutex.RLock()

	argCopy := make([]*ClientMockGetObjectParams, len(mmGetObject.callArgs))
	copy(argCopy, mmGetObject.callArgs)

	mmGetObject.mutex.RUnlock()

	return argCopy
}

// MinimockGetObjectDone returns true if the count of the GetObject invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockGetObjectDone() bool {
	if m.GetObjectMock.optional {
		return true
	}

	for _, e := range m.GetObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.GetObjectMock.invocationsDone()
}

// MinimockGetObjectInspect logs each unmet expectation
func (m *ClientMock) MinimockGetObjectInspect() {
	for _, e := range m.GetObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.GetObject with params: %#v", *e.params)
		}
	}

	afterGetObjectCounter := mm_atomic.LoadUint64(&m.afterGetObjectCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.GetObjectMock.defaultExpectation != nil && afterGetObjectCounter < 1 {
		if m.GetObjectMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.GetObject")
		} else {
			m.t.Errorf("Expected call to ClientMock.GetObject with params: %#v", *m.GetObjectMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetObject != nil && afterGetObjectCounter < 1 {
		m.t.Error("Expected call to ClientMock.GetObject")
	}

	if !m.GetObjectMock.invocationsDone() && afterGetObjectCounter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.GetObject but found %d calls",
			mm_atomic.LoadUint64(&m.GetObjectMock.expectedInvocations), afterGetObjectCounter)
	}
}

type mClientMockHeadBucket struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockHeadBucketExpectation
	expectations       []*ClientMockHeadBucketExpectation

	callArgs []*ClientMockHeadBucketParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockHeadBucketExpectation specifies expectation struct of the s3.Client.HeadBucket
type ClientMockHeadBucketExpectation struct {
	mock    *ClientMock
	params  *ClientMockHeadBucketParams
	results *ClientMockHeadBucketResults
	Counter uint64
}

// ClientMockHeadBucketParams contains parameters of the s3.Client.HeadBucket
type ClientMockHeadBucketParams struct {
	ctx    context.Context
	params *s3.HeadBucketInput
	optFns []func(*s3.Options)
}

// ClientMockHeadBucketResults contains results of the s3.Client.HeadBucket
type ClientMockHeadBucketResults struct {
	pp1 *s3.HeadBucketOutput
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmHeadBucket *mClientMockHeadBucket) Optional() *mClientMockHeadBucket {
	mmHeadBucket.optional = true
	return mmHeadBucket
}

// Expect sets up expected params for s3.Client.HeadBucket
func (mmHeadBucket *mClientMockHeadBucket) Expect(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) *mClientMockHeadBucket {
	if mmHeadBucket.mock.funcHeadBucket != nil {
		mmHeadBucket.mock.t.Fatalf("ClientMock.HeadBucket mock is already set by Set")
	}

	if mmHeadBucket.defaultExpectation == nil {
		mmHeadBucket.defaultExpectation = &ClientMockHeadBucketExpectation{}
	}

	mmHeadBucket.defaultExpectation.params = &ClientMockHeadBucketParams{ctx, params, optFns}
	for _, e := range mmHeadBucket.expectations {
		if minimock.Equal(e.params, mmHeadBucket.defaultExpectation.params) {
			mmHeadBucket.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmHeadBucket.defaultExpectation.params)
		}
	}

	return mmHeadBucket
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.HeadBucket
func (mmHeadBucket *mClientMockHeadBucket) Inspect(f func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options))) *mClientMockHeadBucket {
	if mmHeadBucket.mock.inspectFuncHeadBucket != nil {
		mmHeadBucket.mock.t.Fatalf("Inspect function is already set for ClientMock.HeadBucket")
	}

	mmHeadBucket.mock.inspectFuncHeadBucket = f

	return mmHeadBucket
}

// Return sets up results that will be returned by s3.Client.HeadBucket
func (mmHeadBucket *mClientMockHeadBucket) Return(pp1 *s3.HeadBucketOutput, err error) *ClientMock {
	if mmHeadBucket.mock.funcHeadBucket != nil {
		mmHeadBucket.mock.t.Fatalf("ClientMock.HeadBucket mock is already set by Set")
	}

	if mmHeadBucket.defaultExpectation == nil {
		mmHeadBucket.defaultExpectation = &ClientMockHeadBucketExpectation{mock: mmHeadBucket.mock}
	}
	mmHeadBucket.defaultExpectation.results = &ClientMockHeadBucketResults{pp1, err}
	return mmHeadBucket.mock
}

// Set uses given function f to mock the s3.Client.HeadBucket method
func (mmHeadBucket *mClientMockHeadBucket) Set(f func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (pp1 *s3.HeadBucketOutput, err error)) *ClientMock {
	if mmHeadBucket.defaultExpectation != nil {
		mmHeadBucket.mock.t.Fatalf("Default expectation is already set for the s3.Client.HeadBucket method")
	}

	if len(mmHeadBucket.expectations) > 0 {
		mmHeadBucket.mock.t.Fatalf("Some expectations are already set for the s3.Client.HeadBucket method")
	}

	mmHeadBucket.mock.funcHeadBucket = f
	return mmHeadBucket.mock
}

// When sets expectation for the s3.Client.HeadBucket which will trigger the result defined by the following
// Then helper
func (mmHeadBucket *mClientMockHeadBucket) When(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) *ClientMockHeadBucketExpectation {
	if mmHeadBucket.mock.funcHeadBucket != nil {
		mmHeadBucket.mock.t.Fatalf("ClientMock.HeadBucket mock is already set by Set")
	}

	expectation := &ClientMockHeadBucketExpectation{
		mock:   mmHeadBucket.mock,
		params: &ClientMockHeadBucketParams{ctx, params, optFns},
	}
	mmHeadBucket.expectations = append(mmHeadBucket.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.HeadBucket return parameters for the expectation previously defined by the When method
func (e *ClientMockHeadBucketExpectation) Then(pp1 *s3.HeadBucketOutput, err error) *ClientMock {
	e.results = &ClientMockHeadBucketResults{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.HeadBucket should be invoked
func (mmHeadBucket *mClientMockHeadBucket) Times(n uint64) *mClientMockHeadBucket {
	if n == 0 {
		mmHeadBucket.mock.t.Fatalf("Times of ClientMock.HeadBucket mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmHeadBucket.expectedInvocations, n)
	return mmHeadBucket
}

func (mmHeadBucket *mClientMockHeadBucket) invocationsDone() bool {
	if len(mmHeadBucket.expectations) == 0 && mmHeadBucket.defaultExpectation == nil && mmHeadBucket.mock.funcHeadBucket == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmHeadBucket.mock.afterHeadBucketCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmHeadBucket.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// HeadBucket implements s3.Client
func (mm_h *ClientMock) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (pp1 *s3.HeadBucketOutput, err error) {
	mm_atomic.AddUint64(&mm_h.beforeHeadBucketCounter, 1)
	defer mm_atomic.AddUint64(&mm_h.afterHeadBucketCounter, 1)

	if mm_h.inspectFuncHeadBucket != nil {
		mm_h.inspectFuncHeadBucket(ctx, params, optFns...)
	}

	mm_params := ClientMockHeadBucketParams{ctx, params, optFns}

	// Record call args
	mm_h.HeadBucketMock.mutex.Lock()
	mm_h.HeadBucketMock.callArgs = append(mm_h.HeadBucketMock.callArgs, &mm_params)
	mm_h.HeadBucketMock.mutex.Unlock()

	for _, e := range mm_h.HeadBucketMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_h.HeadBucketMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_h.HeadBucketMock.defaultExpectation.Counter, 1)
		mm_want := mm_h.HeadBucketMock.defaultExpectation.params
		mm_got := ClientMockHeadBucketParams{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_h.t.Errorf("ClientMock.HeadBucket got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_h.HeadBucketMock.defaultExpectation.results
		if mm_results == nil {
			mm_h.t.Fatal("No results are set for the ClientMock.HeadBucket")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_h.funcHeadBucket != nil {
		return mm_h.funcHeadBucket(ctx, params, optFns...)
	}
	mm_h.t.Fatalf("Unexpected call to ClientMock.HeadBucket. %v %v %v", ctx, params, optFns)
	return
}

// HeadBucketAfterCounter returns a count of finished ClientMock.HeadBucket invocations
func (mmHeadBucket *ClientMock) HeadBucketAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHeadBucket.afterHeadBucketCounter)
}

// HeadBucketBeforeCounter returns a count of ClientMock.HeadBucket invocations
func (mmHeadBucket *ClientMock) HeadBucketBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHeadBucket.beforeHeadBucketCounter)
}

// Calls returns a list of arguments used in each call to ClientMock.HeadBucket.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmHeadBucket *mClientMockHeadBucket) Calls() []*ClientMockHeadBucketParams {
	mmHeadBucket.mutex.RLock()

	argCopy := make([]*ClientMockHeadBucketParams, len(mmHeadBucket.callArgs))
	copy(argCopy, mmHeadBucket.callArgs)

	mmHeadBucket.mutex.RUnlock()

	return argCopy
}

// MinimockHeadBucketDone returns true if the count of the HeadBucket invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockHeadBucketDone() bool {
	if m.HeadBucketMock.optional {
		return true
	}

	for _, e := range m.HeadBucketMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.HeadBucketMock.invocationsDone()
}

// MinimockHeadBucketInspect logs each unmet expectation
func (m *ClientMock) MinimockHeadBucketInspect() {
	for _, e := range m.HeadBucketMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.HeadBucket with params: %#v", *e.params)
		}
	}

	afterHeadBucketCounter := mm_atomic.LoadUint64(&m.afterHeadBucketCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.HeadBucketMock.defaultExpectation != nil && afterHeadBucketCounter < 1 {
		if m.HeadBucketMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.HeadBucket")
		} else {
			m.t.Errorf("Expected call to ClientMock.HeadBucket with params: %#v", *m.HeadBucketMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcHeadBucket != nil && afterHeadBucketCounter < 1 {
		m.t.Error("Expected call to ClientMock.HeadBucket")
	}

	if !m.HeadBucketMock.invocationsDone() && afterHeadBucketCounter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.HeadBucket but found %d calls",
			mm_atomic.LoadUint64(&m.HeadBucketMock.expectedInvocations), afterHeadBucketCounter)
	}
}

type mClientMockHeadObject struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockHeadObjectExpectation
	expectations       []*ClientMockHeadObjectExpectation

	callArgs []*ClientMockHeadObjectParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockHeadObjectExpectation specifies expectation struct of the s3.Client.HeadObject
type ClientMockHeadObjectExpectation struct {
	mock    *ClientMock
	params  *ClientMockHeadObjectParams
	results *ClientMockHeadObjectResults
	Counter uint64
}

// ClientMockHeadObjectParams contains parameters of the s3.Client.HeadObject
type ClientMockHeadObjectParams struct {
	ctx    context.Context
	params *s3.HeadObjectInput
	optFns []func(*s3.Options)
}

// ClientMockHeadObjectResults contains results of the s3.Client.HeadObject
type ClientMockHeadObjectResults struct {
	pp1 *s3.HeadObjectOutput
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmHeadObject *mClientMockHeadObject) Optional() *mClientMockHeadObject {
	mmHeadObject.optional = true
	return mmHeadObject
}

// Expect sets up expected params for s3.Client.HeadObject
func (mmHeadObject *mClientMockHeadObject) Expect(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) *mClientMockHeadObject {
	if mmHeadObject.mock.funcHeadObject != nil {
		mmHeadObject.mock.t.Fatalf("ClientMock.HeadObject mock is already set by Set")
	}

	if mmHeadObject.defaultExpectation == nil {
		mmHeadObject.defaultExpectation = &ClientMockHeadObjectExpectation{}
	}

	mmHeadObject.defaultExpectation.params = &ClientMockHeadObjectParams{ctx, params, optFns}
	for _, e := range mmHeadObject.expectations {
		if minimock.Equal(e.params, mmHeadObject.defaultExpectation.params) {
			mmHeadObject.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmHeadObject.defaultExpectation.params)
		}
	}

	return mmHeadObject
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.HeadObject
func (mmHeadObject *mClientMockHeadObject) Inspect(f func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options))) *mClientMockHeadObject {
	if mmHeadObject.mock.inspectFuncHeadObject != nil {
		mmHeadObject.mock.t.Fatalf("Inspect function is already set for ClientMock.HeadObject")
	}

	mmHeadObject.mock.inspectFuncHeadObject = f

	return mmHeadObject
}

// Return sets up results that will be returned by s3.Client.HeadObject
func (mmHeadObject *mClientMockHeadObject) Return(pp1 *s3.HeadObjectOutput, err error) *ClientMock {
	if mmHeadObject.mock.funcHeadObject != nil {
		mmHeadObject.mock.t.Fatalf("ClientMock.HeadObject mock is already set by Set")
	}

	if mmHeadObject.defaultExpectation == nil {
		mmHeadObject.defaultExpectation = &ClientMockHeadObjectExpectation{mock: mmHeadObject.mock}
	}
	mmHeadObject.defaultExpectation.results = &ClientMockHeadObjectResults{pp1, err}
	return mmHeadObject.mock
}

// Set uses given function f to mock the s3.Client.HeadObject method
func (mmHeadObject *mClientMockHeadObject) Set(f func(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.HeadObjectOutput, err error)) *ClientMock {
	if mmHeadObject.defaultExpectation != nil {
		mmHeadObject.mock.t.Fatalf("Default expectation is already set for the s3.Client.HeadObject method")
	}

	if len(mmHeadObject.expectations) > 0 {
		mmHeadObject.mock.t.Fatalf("Some expectations are already set for the s3.Client.HeadObject method")
	}

	mmHeadObject.mock.funcHeadObject = f
	return mmHeadObject.mock
}

// When sets expectation for the s3.Client.HeadObject which will trigger the result defined by the following
// Then helper
func (mmHeadObject *mClientMockHeadObject) When(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) *ClientMockHeadObjectExpectation {
	if mmHeadObject.mock.funcHeadObject != nil {
		mmHeadObject.mock.t.Fatalf("ClientMock.HeadObject mock is already set by Set")
	}

	expectation := &ClientMockHeadObjectExpectation{
		mock:   mmHeadObject.mock,
		params: &ClientMockHeadObjectParams{ctx, params, optFns},
	}
	mmHeadObject.expectations = append(mmHeadObject.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.HeadObject return parameters for the expectation previously defined by the When method
func (e *ClientMockHeadObjectExpectation) Then(pp1 *s3.HeadObjectOutput, err error) *ClientMock {
	e.results = &ClientMockHeadObjectResults{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.HeadObject should be invoked
func (mmHeadObject *mClientMockHeadObject) Times(n uint64) *mClientMockHeadObject {
	if n == 0 {
		mmHeadObject.mock.t.Fatalf("Times of ClientMock.HeadObject mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmHeadObject.expectedInvocations, n)
	return mmHeadObject
}

func (mmHeadObject *mClientMockHeadObject) invocationsDone() bool {
	if len(mmHeadObject.expectations) == 0 && mmHeadObject.defaultExpectation == nil && mmHeadObject.mock.funcHeadObject == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmHeadObject.mock.afterHeadObjectCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmHeadObject.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// HeadObject implements s3.Client
func (mm_h *ClientMock) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.HeadObjectOutput, err error) {
	mm_atomic.AddUint64(&mm_h.beforeHeadObjectCounter, 1)
	defer mm_atomic.AddUint64(&mm_h.afterHeadObjectCounter, 1)

	if mm_h.inspectFuncHeadObject != nil {
		mm_h.inspectFuncHeadObject(ctx, params, optFns...)
	}

	mm_params := ClientMockHeadObjectParams{ctx, params, optFns}

	// Record call args
	mm_h.HeadObjectMock.mutex.Lock()
	mm_h.HeadObjectMock.callArgs = append(mm_h.HeadObjectMock.callArgs, &mm_params)
	mm_h.HeadObjectMock.mutex.Unlock()

	for _, e := range mm_h.HeadObjectMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_h.HeadObjectMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_h.HeadObjectMock.defaultExpectation.Counter, 1)
		mm_want := mm_h.HeadObjectMock.defaultExpectation.params
		mm_got := ClientMockHeadObjectParams{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_h.t.Errorf("ClientMock.HeadObject got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_h.HeadObjectMock.defaultExpectation.results
		if mm_results == nil {
			mm_h.t.Fatal("No results are set for the ClientMock.HeadObject")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_h.funcHeadObject != nil {
		return mm_h.funcHeadObject(ctx, params, optFns...)
	}
	mm_h.t.Fatalf("Unexpected call to ClientMock.HeadObject. %v %v %v", ctx, params, optFns)
	return
}

// HeadObjectAfterCounter returns a count of finished ClientMock.HeadObject invocations
func (mmHeadObject *ClientMock) HeadObjectAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHeadObject.afterHeadObjectCounter)
}

// HeadObjectBeforeCounter returns a count of ClientMock.HeadObject invocations
func (mmHeadObject *ClientMock) HeadObjectBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmHeadObject.beforeHeadObjectCounter)
}

// Calls returns a list of arguments used in each call to ClientMock.HeadObject.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmHeadObject *mClientMockHeadObject) Calls() []*ClientMockHeadObjectParams {
	mmHeadObject.mutex.RLock()

	argCopy := make([]*ClientMockHeadObjectParams, len(mmHeadObject.callArgs))
	copy(argCopy, mmHeadObject.callArgs)

	mmHeadObject.mutex.RUnlock()

	return argCopy
}

// MinimockHeadObjectDone returns true if the count of the HeadObject invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockHeadObjectDone() bool {
	if m.HeadObjectMock.optional {
		return true
	}

	for _, e := range m.HeadObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.HeadObjectMock.invocationsDone()
}

// MinimockHeadObjectInspect logs each unmet expectation
func (m *ClientMock) MinimockHeadObjectInspect() {
	for _, e := range m.HeadObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.HeadObject with params: %#v", *e.params)
		}
	}

	afterHeadObjectCounter := mm_atomic.LoadUint64(&m.afterHeadObjectCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.HeadObjectMock.defaultExpectation != nil && afterHeadObjectCounter < 1 {
		if m.HeadObjectMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.HeadObject")
		} else {
			m.t.Errorf("Expected call to ClientMock.HeadObject with params: %#v", *m.HeadObjectMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcHeadObject != nil && afterHeadObjectCounter < 1 {
		m.t.Error("Expected call to ClientMock.HeadObject")
	}

	if !m.HeadObjectMock.invocationsDone() && afterHeadObjectCounter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.HeadObject but found %d calls",
			mm_atomic.LoadUint64(&m.HeadObjectMock.expectedInvocations), afterHeadObjectCounter)
	}
}

type mClientMockListObjectsV2 struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockListObjectsV2Expectation
	expectations       []*ClientMockListObjectsV2Expectation

	callArgs []*ClientMockListObjectsV2Params
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockListObjectsV2Expectation specifies expectation struct of the s3.Client.ListObjectsV2
type ClientMockListObjectsV2Expectation struct {
	mock    *ClientMock
	params  *ClientMockListObjectsV2Params
	results *ClientMockListObjectsV2Results
	Counter uint64
}

// ClientMockListObjectsV2Params contains parameters of the s3.Client.ListObjectsV2
type ClientMockListObjectsV2Params struct {
	ctx    context.Context
	params *s3.ListObjectsV2Input
	optFns []func(*s3.Options)
}

// ClientMockListObjectsV2Results contains results of the s3.Client.ListObjectsV2
type ClientMockListObjectsV2Results struct {
	pp1 *s3.ListObjectsV2Output
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmListObjectsV2 *mClientMockListObjectsV2) Optional() *mClientMockListObjectsV2 {
	mmListObjectsV2.optional = true
	return mmListObjectsV2
}

// Expect sets up expected params for s3.Client.ListObjectsV2
func (mmListObjectsV2 *mClientMockListObjectsV2) Expect(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) *mClientMockListObjectsV2 {
	if mmListObjectsV2.mock.funcListObjectsV2 != nil {
		mmListObjectsV2.mock.t.Fatalf("ClientMock.ListObjectsV2 mock is already set by Set")
	}

	if mmListObjectsV2.defaultExpectation == nil {
		mmListObjectsV2.defaultExpectation = &ClientMockListObjectsV2Expectation{}
	}

	mmListObjectsV2.defaultExpectation.params = &ClientMockListObjectsV2Params{ctx, params, optFns}
	for _, e := range mmListObjectsV2.expectations {
		if minimock.Equal(e.params, mmListObjectsV2.defaultExpectation.params) {
			mmListObjectsV2.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmListObjectsV2.defaultExpectation.params)
		}
	}

	return mmListObjectsV2
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.ListObjectsV2
func (mmListObjectsV2 *mClientMockListObjectsV2) Inspect(f func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options))) *mClientMockListObjectsV2 {
	if mmListObjectsV2.mock.inspectFuncListObjectsV2 != nil {
		mmListObjectsV2.mock.t.Fatalf("Inspect function is already set for ClientMock.ListObjectsV2")
	}

	mmListObjectsV2.mock.inspectFuncListObjectsV2 = f

	return mmListObjectsV2
}

// Return sets up results that will be returned by s3.Client.ListObjectsV2
func (mmListObjectsV2 *mClientMockListObjectsV2) Return(pp1 *s3.ListObjectsV2Output, err error) *ClientMock {
	if mmListObjectsV2.mock.funcListObjectsV2 != nil {
		mmListObjectsV2.mock.t.Fatalf("ClientMock.ListObjectsV2 mock is already set by Set")
	}

	if mmListObjectsV2.defaultExpectation == nil {
		mmListObjectsV2.defaultExpectation = &ClientMockListObjectsV2Expectation{mock: mmListObjectsV2.mock}
	}
	mmListObjectsV2.defaultExpectation.results = &ClientMockListObjectsV2Results{pp1, err}
	return mmListObjectsV2.mock
}

// Set uses given function f to mock the s3.Client.ListObjectsV2 method
func (mmListObjectsV2 *mClientMockListObjectsV2) Set(f func(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (pp1 *s3.ListObjectsV2Output, err error)) *ClientMock {
	if mmListObjectsV2.defaultExpectation != nil {
		mmListObjectsV2.mock.t.Fatalf("Default expectation is already set for the s3.Client.ListObjectsV2 method")
	}

	if len(mmListObjectsV2.expectations) > 0 {
		mmListObjectsV2.mock.t.Fatalf("Some expectations are already set for the s3.Client.ListObjectsV2 method")
	}

	mmListObjectsV2.mock.funcListObjectsV2 = f
	return mmListObjectsV2.mock
}

// When sets expectation for the s3.Client.ListObjectsV2 which will trigger the result defined by the following
// Then helper
func (mmListObjectsV2 *mClientMockListObjectsV2) When(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) *ClientMockListObjectsV2Expectation {
	if mmListObjectsV2.mock.funcListObjectsV2 != nil {
		mmListObjectsV2.mock.t.Fatalf("ClientMock.ListObjectsV2 mock is already set by Set")
	}

	expectation := &ClientMockListObjectsV2Expectation{
		mock:   mmListObjectsV2.mock,
		params: &ClientMockListObjectsV2Params{ctx, params, optFns},
	}
	mmListObjectsV2.expectations = append(mmListObjectsV2.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.ListObjectsV2 return parameters for the expectation previously defined by the When method
func (e *ClientMockListObjectsV2Expectation) Then(pp1 *s3.ListObjectsV2Output, err error) *ClientMock {
	e.results = &ClientMockListObjectsV2Results{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.ListObjectsV2 should be invoked
func (mmListObjectsV2 *mClientMockListObjectsV2) Times(n uint64) *mClientMockListObjectsV2 {
	if n == 0 {
		mmListObjectsV2.mock.t.Fatalf("Times of ClientMock.ListObjectsV2 mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmListObjectsV2.expectedInvocations, n)
	return mmListObjectsV2
}

func (mmListObjectsV2 *mClientMockListObjectsV2) invocationsDone() bool {
	if len(mmListObjectsV2.expectations) == 0 && mmListObjectsV2.defaultExpectation == nil && mmListObjectsV2.mock.funcListObjectsV2 == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmListObjectsV2.mock.afterListObjectsV2Counter)
	expectedInvocations := mm_atomic.LoadUint64(&mmListObjectsV2.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// ListObjectsV2 implements s3.Client
func (mm_l *ClientMock) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (pp1 *s3.ListObjectsV2Output, err error) {
	mm_atomic.AddUint64(&mm_l.beforeListObjectsV2Counter, 1)
	defer mm_atomic.AddUint64(&mm_l.afterListObjectsV2Counter, 1)

	if mm_l.inspectFuncListObjectsV2 != nil {
		mm_l.inspectFuncListObjectsV2(ctx, params, optFns...)
	}

	mm_params := ClientMockListObjectsV2Params{ctx, params, optFns}

	// Record call args
	mm_l.ListObjectsV2Mock.mutex.Lock()
	mm_l.ListObjectsV2Mock.callArgs = append(mm_l.ListObjectsV2Mock.callArgs, &mm_params)
	mm_l.ListObjectsV2Mock.mutex.Unlock()

	for _, e := range mm_l.ListObjectsV2Mock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_l.ListObjectsV2Mock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_l.ListObjectsV2Mock.defaultExpectation.Counter, 1)
		mm_want := mm_l.ListObjectsV2Mock.defaultExpectation.params
		mm_got := ClientMockListObjectsV2Params{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_l.t.Errorf("ClientMock.ListObjectsV2 got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_l.ListObjectsV2Mock.defaultExpectation.results
		if mm_results == nil {
			mm_l.t.Fatal("No results are set for the ClientMock.ListObjectsV2")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_l.funcListObjectsV2 != nil {
		return mm_l.funcListObjectsV2(ctx, params, optFns...)
	}
	mm_l.t.Fatalf("Unexpected call to ClientMock.ListObjectsV2. %v %v %v", ctx, params, optFns)
	return
}

// ListObjectsV2AfterCounter returns a count of finished ClientMock.ListObjectsV2 invocations
func (mmListObjectsV2 *ClientMock) ListObjectsV2AfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListObjectsV2.afterListObjectsV2Counter)
}

// ListObjectsV2BeforeCounter returns a count of ClientMock.ListObjectsV2 invocations
func (mmListObjectsV2 *ClientMock) ListObjectsV2BeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmListObjectsV2.beforeListObjectsV2Counter)
}

// Calls returns a list of arguments used in each call to ClientMock.ListObjectsV2.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmListObjectsV2 *mClientMockListObjectsV2) Calls() []*ClientMockListObjectsV2Params {
	mmListObjectsV2.mutex.RLock()

	argCopy := make([]*ClientMockListObjectsV2Params, len(mmListObjectsV2.callArgs))
	copy(argCopy, mmListObjectsV2.callArgs)

	mmListObjectsV2.mutex.RUnlock()

	return argCopy
}

// MinimockListObjectsV2Done returns true if the count of the ListObjectsV2 invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockListObjectsV2Done() bool {
	if m.ListObjectsV2Mock.optional {
		return true
	}

	for _, e := range m.ListObjectsV2Mock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.ListObjectsV2Mock.invocationsDone()
}

// MinimockListObjectsV2Inspect logs each unmet expectation
func (m *ClientMock) MinimockListObjectsV2Inspect() {
	for _, e := range m.ListObjectsV2Mock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.ListObjectsV2 with params: %#v", *e.params)
		}
	}

	afterListObjectsV2Counter := mm_atomic.LoadUint64(&m.afterListObjectsV2Counter)
	// if default expectation was set then invocations count should be greater than zero
	if m.ListObjectsV2Mock.defaultExpectation != nil && afterListObjectsV2Counter < 1 {
		if m.ListObjectsV2Mock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.ListObjectsV2")
		} else {
			m.t.Errorf("Expected call to ClientMock.ListObjectsV2 with params: %#v", *m.ListObjectsV2Mock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcListObjectsV2 != nil && afterListObjectsV2Counter < 1 {
		m.t.Error("Expected call to ClientMock.ListObjectsV2")
	}

	if !m.ListObjectsV2Mock.invocationsDone() && afterListObjectsV2Counter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.ListObjectsV2 but found %d calls",
			mm_atomic.LoadUint64(&m.ListObjectsV2Mock.expectedInvocations), afterListObjectsV2Counter)
	}
}

type mClientMockPutObject struct {
	optional           bool
	mock               *ClientMock
	defaultExpectation *ClientMockPutObjectExpectation
	expectations       []*ClientMockPutObjectExpectation

	callArgs []*ClientMockPutObjectParams
	mutex    sync.RWMutex

	expectedInvocations uint64
}

// ClientMockPutObjectExpectation specifies expectation struct of the s3.Client.PutObject
type ClientMockPutObjectExpectation struct {
	mock    *ClientMock
	params  *ClientMockPutObjectParams
	results *ClientMockPutObjectResults
	Counter uint64
}

// ClientMockPutObjectParams contains parameters of the s3.Client.PutObject
type ClientMockPutObjectParams struct {
	ctx    context.Context
	params *s3.PutObjectInput
	optFns []func(*s3.Options)
}

// ClientMockPutObjectResults contains results of the s3.Client.PutObject
type ClientMockPutObjectResults struct {
	pp1 *s3.PutObjectOutput
	err error
}

// Optional marks method as optional so that it may not be called at all.
func (mmPutObject *mClientMockPutObject) Optional() *mClientMockPutObject {
	mmPutObject.optional = true
	return mmPutObject
}

// Expect sets up expected params for s3.Client.PutObject
func (mmPutObject *mClientMockPutObject) Expect(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) *mClientMockPutObject {
	if mmPutObject.mock.funcPutObject != nil {
		mmPutObject.mock.t.Fatalf("ClientMock.PutObject mock is already set by Set")
	}

	if mmPutObject.defaultExpectation == nil {
		mmPutObject.defaultExpectation = &ClientMockPutObjectExpectation{}
	}

	mmPutObject.defaultExpectation.params = &ClientMockPutObjectParams{ctx, params, optFns}
	for _, e := range mmPutObject.expectations {
		if minimock.Equal(e.params, mmPutObject.defaultExpectation.params) {
			mmPutObject.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmPutObject.defaultExpectation.params)
		}
	}

	return mmPutObject
}

// Inspect accepts an inspector function that has same arguments as the s3.Client.PutObject
func (mmPutObject *mClientMockPutObject) Inspect(f func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options))) *mClientMockPutObject {
	if mmPutObject.mock.inspectFuncPutObject != nil {
		mmPutObject.mock.t.Fatalf("Inspect function is already set for ClientMock.PutObject")
	}

	mmPutObject.mock.inspectFuncPutObject = f

	return mmPutObject
}

// Return sets up results that will be returned by s3.Client.PutObject
func (mmPutObject *mClientMockPutObject) Return(pp1 *s3.PutObjectOutput, err error) *ClientMock {
	if mmPutObject.mock.funcPutObject != nil {
		mmPutObject.mock.t.Fatalf("ClientMock.PutObject mock is already set by Set")
	}

	if mmPutObject.defaultExpectation == nil {
		mmPutObject.defaultExpectation = &ClientMockPutObjectExpectation{mock: mmPutObject.mock}
	}
	mmPutObject.defaultExpectation.results = &ClientMockPutObjectResults{pp1, err}
	return mmPutObject.mock
}

// Set uses given function f to mock the s3.Client.PutObject method
func (mmPutObject *mClientMockPutObject) Set(f func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.PutObjectOutput, err error)) *ClientMock {
	if mmPutObject.defaultExpectation != nil {
		mmPutObject.mock.t.Fatalf("Default expectation is already set for the s3.Client.PutObject method")
	}

	if len(mmPutObject.expectations) > 0 {
		mmPutObject.mock.t.Fatalf("Some expectations are already set for the s3.Client.PutObject method")
	}

	mmPutObject.mock.funcPutObject = f
	return mmPutObject.mock
}

// When sets expectation for the s3.Client.PutObject which will trigger the result defined by the following
// Then helper
func (mmPutObject *mClientMockPutObject) When(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) *ClientMockPutObjectExpectation {
	if mmPutObject.mock.funcPutObject != nil {
		mmPutObject.mock.t.Fatalf("ClientMock.PutObject mock is already set by Set")
	}

	expectation := &ClientMockPutObjectExpectation{
		mock:   mmPutObject.mock,
		params: &ClientMockPutObjectParams{ctx, params, optFns},
	}
	mmPutObject.expectations = append(mmPutObject.expectations, expectation)
	return expectation
}

// Then sets up s3.Client.PutObject return parameters for the expectation previously defined by the When method
func (e *ClientMockPutObjectExpectation) Then(pp1 *s3.PutObjectOutput, err error) *ClientMock {
	e.results = &ClientMockPutObjectResults{pp1, err}
	return e.mock
}

// Times sets number of times s3.Client.PutObject should be invoked
func (mmPutObject *mClientMockPutObject) Times(n uint64) *mClientMockPutObject {
	if n == 0 {
		mmPutObject.mock.t.Fatalf("Times of ClientMock.PutObject mock can not be zero")
	}
	mm_atomic.StoreUint64(&mmPutObject.expectedInvocations, n)
	return mmPutObject
}

func (mmPutObject *mClientMockPutObject) invocationsDone() bool {
	if len(mmPutObject.expectations) == 0 && mmPutObject.defaultExpectation == nil && mmPutObject.mock.funcPutObject == nil {
		return true
	}

	totalInvocations := mm_atomic.LoadUint64(&mmPutObject.mock.afterPutObjectCounter)
	expectedInvocations := mm_atomic.LoadUint64(&mmPutObject.expectedInvocations)

	return totalInvocations > 0 && (expectedInvocations == 0 || expectedInvocations == totalInvocations)
}

// PutObject implements s3.Client
func (mm_p *ClientMock) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (pp1 *s3.PutObjectOutput, err error) {
	mm_atomic.AddUint64(&mm_p.beforePutObjectCounter, 1)
	defer mm_atomic.AddUint64(&mm_p.afterPutObjectCounter, 1)

	if mm_p.inspectFuncPutObject != nil {
		mm_p.inspectFuncPutObject(ctx, params, optFns...)
	}

	mm_params := ClientMockPutObjectParams{ctx, params, optFns}

	// Record call args
	mm_p.PutObjectMock.mutex.Lock()
	mm_p.PutObjectMock.callArgs = append(mm_p.PutObjectMock.callArgs, &mm_params)
	mm_p.PutObjectMock.mutex.Unlock()

	for _, e := range mm_p.PutObjectMock.expectations {
		if minimock.Equal(*e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.pp1, e.results.err
		}
	}

	if mm_p.PutObjectMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mm_p.PutObjectMock.defaultExpectation.Counter, 1)
		mm_want := mm_p.PutObjectMock.defaultExpectation.params
		mm_got := ClientMockPutObjectParams{ctx, params, optFns}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mm_p.t.Errorf("ClientMock.PutObject got unexpected parameters, want: %#v, got: %#v%s\n", *mm_want, mm_got, minimock.Diff(*mm_want, mm_got))
		}

		mm_results := mm_p.PutObjectMock.defaultExpectation.results
		if mm_results == nil {
			mm_p.t.Fatal("No results are set for the ClientMock.PutObject")
		}
		return (*mm_results).pp1, (*mm_results).err
	}
	if mm_p.funcPutObject != nil {
		return mm_p.funcPutObject(ctx, params, optFns...)
	}
	mm_p.t.Fatalf("Unexpected call to ClientMock.PutObject. %v %v %v", ctx, params, optFns)
	return
}

// PutObjectAfterCounter returns a count of finished ClientMock.PutObject invocations
func (mmPutObject *ClientMock) PutObjectAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPutObject.afterPutObjectCounter)
}

// PutObjectBeforeCounter returns a count of ClientMock.PutObject invocations
func (mmPutObject *ClientMock) PutObjectBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmPutObject.beforePutObjectCounter)
}

// Calls returns a list of arguments used in each call to ClientMock.PutObject.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmPutObject *mClientMockPutObject) Calls() []*ClientMockPutObjectParams {
	mmPutObject.mutex.RLock()

	argCopy := make([]*ClientMockPutObjectParams, len(mmPutObject.callArgs))
	copy(argCopy, mmPutObject.callArgs)

	mmPutObject.mutex.RUnlock()

	return argCopy
}

// MinimockPutObjectDone returns true if the count of the PutObject invocations corresponds
// the number of defined expectations
func (m *ClientMock) MinimockPutObjectDone() bool {
	if m.PutObjectMock.optional {
		return true
	}

	for _, e := range m.PutObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	return m.PutObjectMock.invocationsDone()
}

// MinimockPutObjectInspect logs each unmet expectation
func (m *ClientMock) MinimockPutObjectInspect() {
	for _, e := range m.PutObjectMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ClientMock.PutObject with params: %#v", *e.params)
		}
	}

	afterPutObjectCounter := mm_atomic.LoadUint64(&m.afterPutObjectCounter)
	// if default expectation was set then invocations count should be greater than zero
	if m.PutObjectMock.defaultExpectation != nil && afterPutObjectCounter < 1 {
		if m.PutObjectMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ClientMock.PutObject")
		} else {
			m.t.Errorf("Expected call to ClientMock.PutObject with params: %#v", *m.PutObjectMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcPutObject != nil && afterPutObjectCounter < 1 {
		m.t.Error("Expected call to ClientMock.PutObject")
	}

	if !m.PutObjectMock.invocationsDone() && afterPutObjectCounter > 0 {
		m.t.Errorf("Expected %d calls to ClientMock.PutObject but found %d calls",
			mm_atomic.LoadUint64(&m.PutObjectMock.expectedInvocations), afterPutObjectCounter)
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ClientMock) MinimockFinish() {
	m.finishOnce.Do(func() {
		if !m.minimockDone() {
			m.MinimockCreateBucketInspect()
			m.MinimockDeleteObjectInspect()
			m.MinimockGetObjectInspect()
			m.MinimockHeadBucketInspect()
			m.MinimockHeadObjectInspect()
			m.MinimockListObjectsV2Inspect()
			m.MinimockPutObjectInspect()
		}
	})
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ClientMock) MinimockWait(timeout mm_time.Duration) {
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

func (m *ClientMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCreateBucketDone() &&
		m.MinimockDeleteObjectDone() &&
		m.MinimockGetObjectDone() &&
		m.MinimockHeadBucketDone() &&
		m.MinimockHeadObjectDone() &&
		m.MinimockListObjectsV2Done() &&
		m.MinimockPutObjectDone()
}
