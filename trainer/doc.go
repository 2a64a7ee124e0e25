// Package trainer contains the consumer-side contract for batches emitted
// by the iterator, along with several Consumer implementations:
//
// - Collector: thread-safe collection of emitted batches
// - Channel: forwarding batches to an existing channel
// - Func: adapting a plain function
// - Logging: wrapping another consumer with logging
// - StateCarrier: per-lane recurrent state kept across batches
//
// StateCarrier encodes the contract a recurrent trainer must honor: a
// lane's hidden state is reinitialized exactly when Batch.LaneReset marks
// the lane, and carried forward otherwise.
package trainer
