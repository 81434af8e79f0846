// Package sourcesink provides lazy sequences built on inversion of control.
//
// A SourceFunc produces elements by pushing them, one at a time, into a SinkFunc.
// The sink decides after every element whether production should continue: returning
// true from a sink stops the source, which then returns true itself to report that it
// was stopped early. A source that runs out of elements returns false.
//
// Streams are constructed from a primitive SourceFunc, which can produce elements from slices,
// channels, integer ranges, or any arbitrary function that honors the sink's stop signal.
//
// Sources may then be wrapped using mapping, filtering, windowing (Take, Skip), concatenation,
// and flattening operations. Wrapping never evaluates anything: it only builds a new SourceFunc
// that closes over its inputs.
//
// Finally, elements are consumed by calling the outermost source with a sink, either directly
// or through a terminal helper such as CollectInto, Reduce, Each, or AnyMatch.
//
// Evaluation is fully synchronous. A stop signal raised by any sink is propagated outward
// through every wrapping source, so unbounded sources such as Iota are safe to use as long as
// something downstream eventually stops them, for example Take.
package sourcesink
