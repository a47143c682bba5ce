// Package mocks holds minimock mocks of the driver and S3 client interfaces.
package mocks

//go:generate go tool minimock -i github.com/tarantool/go-kvns/driver.Driver -o driver_mock.go -n DriverMock -p mocks
//go:generate go tool minimock -i github.com/tarantool/go-kvns/driver/s3.Client -o client_mock.go -n ClientMock -p mocks
