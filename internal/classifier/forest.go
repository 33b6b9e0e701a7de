package classifier

import (
	"math"
	"math/rand"
	"sort"
)

// Training hyperparameters. The seed is fixed so that training the same
// data always produces the same model.
const (
	numTrees  = 100
	maxDepth  = 10
	trainSeed = 42
)

// forest is a bagged ensemble of binary classification trees. All fields
// are exported for gob encoding; a forest is read-only after training.
type forest struct {
	Trees       []*treeNode
	NumFeatures int
	// Importances holds the impurity-decrease feature importances gathered
	// during training, normalized to sum to 1.
	Importances []float64
}

// treeNode is one node of a classification tree. Leaf nodes carry the
// majority class; internal nodes split on Feature <= Threshold.
type treeNode struct {
	Leaf      bool
	Class     int
	Feature   int
	Threshold float64
	Left      *treeNode
	Right     *treeNode
}

// trainForest fits the ensemble on feature vectors X and binary labels y.
func trainForest(x [][]float64, y []int) *forest {
	rng := rand.New(rand.NewSource(trainSeed))
	numFeatures := len(x[0])
	mtry := int(math.Max(1, math.Sqrt(float64(numFeatures))))

	f := &forest{
		NumFeatures: numFeatures,
		Importances: make([]float64, numFeatures),
	}

	for i := 0; i < numTrees; i++ {
		// Bootstrap sample with replacement.
		sample := make([]int, len(x))
		for j := range sample {
			sample[j] = rng.Intn(len(x))
		}
		tree := buildTree(x, y, sample, 0, mtry, rng, f.Importances)
		f.Trees = append(f.Trees, tree)
	}

	normalize(f.Importances)
	return f
}

// predict returns the majority vote of the ensemble for one feature vector.
func (f *forest) predict(features []float64) int {
	votes := 0
	for _, tree := range f.Trees {
		votes += tree.classify(features)
	}
	if votes*2 >= len(f.Trees) {
		return 1
	}
	return 0
}

func (t *treeNode) classify(features []float64) int {
	node := t
	for !node.Leaf {
		if features[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node.Class
}

// buildTree grows one tree on the sampled indices, accumulating weighted
// impurity decreases into importances.
func buildTree(x [][]float64, y []int, idx []int, depth, mtry int, rng *rand.Rand, importances []float64) *treeNode {
	if depth >= maxDepth || isPure(y, idx) || len(idx) < 2 {
		return leaf(y, idx)
	}

	feature, threshold, gain := bestSplit(x, y, idx, mtry, rng)
	if gain <= 0 {
		return leaf(y, idx)
	}
	importances[feature] += gain * float64(len(idx))

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return leaf(y, idx)
	}

	return &treeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      buildTree(x, y, left, depth+1, mtry, rng, importances),
		Right:     buildTree(x, y, right, depth+1, mtry, rng, importances),
	}
}

// bestSplit searches mtry randomly chosen features for the split with the
// largest Gini impurity decrease.
func bestSplit(x [][]float64, y []int, idx []int, mtry int, rng *rand.Rand) (int, float64, float64) {
	parentImpurity := gini(y, idx)
	bestFeature, bestThreshold, bestGain := -1, 0.0, 0.0

	numFeatures := len(x[0])
	candidates := rng.Perm(numFeatures)[:mtry]

	for _, feature := range candidates {
		thresholds := candidateThresholds(x, idx, feature)
		for _, threshold := range thresholds {
			var left, right []int
			for _, i := range idx {
				if x[i][feature] <= threshold {
					left = append(left, i)
				} else {
					right = append(right, i)
				}
			}
			if len(left) == 0 || len(right) == 0 {
				continue
			}

			n := float64(len(idx))
			childImpurity := gini(y, left)*float64(len(left))/n + gini(y, right)*float64(len(right))/n
			gain := parentImpurity - childImpurity
			if gain > bestGain {
				bestFeature, bestThreshold, bestGain = feature, threshold, gain
			}
		}
	}

	return bestFeature, bestThreshold, bestGain
}

// candidateThresholds returns midpoints between consecutive distinct values
// of one feature over the sampled rows.
func candidateThresholds(x [][]float64, idx []int, feature int) []float64 {
	seen := make(map[float64]bool)
	values := make([]float64, 0, len(idx))
	for _, i := range idx {
		v := x[i][feature]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return nil
	}

	sort.Float64s(values)
	thresholds := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		thresholds = append(thresholds, (values[i-1]+values[i])/2)
	}
	return thresholds
}

func gini(y []int, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	positives := 0
	for _, i := range idx {
		positives += y[i]
	}
	p := float64(positives) / float64(len(idx))
	return 2 * p * (1 - p)
}

func isPure(y []int, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

func leaf(y []int, idx []int) *treeNode {
	positives := 0
	for _, i := range idx {
		positives += y[i]
	}
	class := 0
	if positives*2 >= len(idx) {
		class = 1
	}
	return &treeNode{Leaf: true, Class: class}
}

func normalize(values []float64) {
	total := 0.0
	for _, v := range values {
		total += v
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
