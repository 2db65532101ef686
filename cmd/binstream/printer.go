package main

type Printer interface {
	Start() error
	Value(offset int64, value interface{}) error
	End() error
}
