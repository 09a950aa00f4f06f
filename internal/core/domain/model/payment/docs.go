// Package payment contains the Payment aggregate.
//
// A payment charges an order total through a pluggable Method strategy.
// It opens in Pending and settles to Approved or Declined when processed;
// a pending payment can be cancelled and an approved one refunded.
package payment
