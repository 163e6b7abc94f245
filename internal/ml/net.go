package ml

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Network is a feed-forward softmax classifier.
// It is the learned, nonlinear counterpart to the linear discriminant for the
// cases where the linear boundary leaves observations misclassified.
type Network struct {
	net *ff.Network
}

// NewNetwork creates a tanh network with a single hidden layer and a softmax output.
func NewNetwork(in, hidden, out int) *Network {
	rate := ml.Learn(1, 0.1)

	initW := xmath.Rand(0, 1, math.Sqrt)
	initB := xmath.Rand(0, 1, math.Sqrt)
	network := ff.New(in, out).
		Add(hidden, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(out, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(out, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(ml.Pow)

	return &Network{net: network}
}

// Train digests the input and returns the current loss.
func (n *Network) Train(in, out []float64) float64 {
	inp := xmath.Vec(len(in)).With(in...)

	loss, _ := n.net.Train(inp, xmath.Vec(len(out)).With(out...))

	return loss.Norm()
}

// Predict returns the softmax output for the observation.
func (n *Network) Predict(in []float64) []float64 {
	inp := xmath.Vec(len(in)).With(in...)

	return n.net.Predict(inp)
}
