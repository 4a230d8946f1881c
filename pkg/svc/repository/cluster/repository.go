// Package clusterrepository provides data access to Ray compute clusters
// running on Kubernetes.
//
// Each operation is a single stateless round-trip: build an argument
// vector, execute the external tool synchronously, and translate its output
// or exit code into domain records or typed failures. All cluster state
// lives in the orchestrator; records are materialized per call and never
// persisted here.
package clusterrepository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raykube/rayctl/pkg/client/helm"
	"github.com/raykube/rayctl/pkg/client/kubectl"
	clustererrors "github.com/raykube/rayctl/pkg/svc/repository/cluster/errors"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/validation"
)

// HeadServiceSuffix is appended to a cluster name to form the name of the
// head service fronting the cluster.
const HeadServiceSuffix = "-ray-head"

// endpointTokenCount is the number of whitespace-separated fields the
// service endpoint query emits: IP first, then PORT.
const endpointTokenCount = 2

var (
	// ErrNameRequired is returned when a create spec carries no cluster name.
	ErrNameRequired = errors.New("cluster name is required")

	// ErrInvalidName is returned when a cluster name is not a valid DNS-1123
	// subdomain and would be rejected as a release name anyway.
	ErrInvalidName = errors.New("invalid cluster name")

	// ErrMalformedEndpoint is returned when the service endpoint query emits
	// fewer fields than the custom-columns contract promises.
	ErrMalformedEndpoint = errors.New("malformed endpoint output")
)

// Cluster is a Ray cluster record materialized from orchestrator state.
// IP and Port are populated only by Get.
type Cluster struct {
	// Name uniquely identifies the cluster within its namespace.
	Name string `json:"name"`
	// Host is the head service name, derived from Name by convention.
	Host string `json:"host,omitempty"`
	// IP is the cluster-internal IP of the head service.
	IP string `json:"ip,omitempty"`
	// Port is the first declared port of the head service.
	Port string `json:"port,omitempty"`
}

// CreateSpec is the payload for creating a cluster. Beyond the name no
// shape validation is performed; malformed specs fail only when the
// installer itself rejects them.
type CreateSpec struct {
	// Name is the requested cluster name, used as the release name.
	Name string `json:"name"`
}

// Repository defines data access for Ray cluster lifecycle operations.
type Repository interface {
	// List returns all clusters in the bound namespace, with only Name
	// populated. An empty result set is not an error.
	List(ctx context.Context) ([]Cluster, error)

	// Get returns the named cluster with its head service endpoint.
	// A missing cluster yields a NotFoundError.
	Get(ctx context.Context, name string) (Cluster, error)

	// Create installs the cluster infrastructure and returns a record
	// containing only the name. Readiness is not verified.
	Create(ctx context.Context, spec CreateSpec) (Cluster, error)

	// Delete removes the named cluster. A missing cluster yields a
	// NotFoundError.
	Delete(ctx context.Context, name string) error
}

// ClusterRepository is the default Repository, delegating every operation
// to the kubectl and helm clients. It is stateless beyond its bound
// namespace, so concurrent callers need no locking at this layer.
type ClusterRepository struct {
	namespace  string
	kubectl    *kubectl.Client
	helm       *helm.Client
	classifier clustererrors.Classifier
	logger     logrus.FieldLogger
}

var _ Repository = (*ClusterRepository)(nil)

// NewClusterRepository constructs a repository bound to the given
// namespace. A nil classifier falls back to the substring classifier.
func NewClusterRepository(
	namespace string,
	kubectlClient *kubectl.Client,
	helmClient *helm.Client,
	classifier clustererrors.Classifier,
) *ClusterRepository {
	if classifier == nil {
		classifier = clustererrors.NewSubstringClassifier()
	}

	return &ClusterRepository{
		namespace:  namespace,
		kubectl:    kubectlClient,
		helm:       helmClient,
		classifier: classifier,
		logger: logrus.WithFields(logrus.Fields{
			"component": "cluster-repository",
			"namespace": namespace,
		}),
	}
}

// Namespace returns the namespace the repository is bound to.
func (r *ClusterRepository) Namespace() string {
	return r.namespace
}

// List returns all Ray clusters in the bound namespace.
func (r *ClusterRepository) List(ctx context.Context) ([]Cluster, error) {
	r.logger.Info("get all clusters")

	output, err := r.kubectl.GetRayClusterNames(ctx, r.namespace)
	if err != nil {
		return nil, fmt.Errorf("list clusters: %w", err)
	}

	clusters := []Cluster{}

	for line := range strings.Lines(output) {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}

		clusters = append(clusters, Cluster{Name: name})
	}

	return clusters, nil
}

// Get returns the named cluster with the head service endpoint resolved.
func (r *ClusterRepository) Get(ctx context.Context, name string) (Cluster, error) {
	r.logger.WithField("cluster", name).Info("get cluster details")

	host := name + HeadServiceSuffix

	output, err := r.kubectl.GetServiceEndpoint(ctx, r.namespace, host)
	if err != nil {
		return Cluster{}, fmt.Errorf("get cluster %q: %w", name, r.classifier.Classify(err))
	}

	tokens := strings.Fields(output)
	if len(tokens) < endpointTokenCount {
		return Cluster{}, fmt.Errorf(
			"get cluster %q: %w: expected ip and port, got %d fields",
			name, ErrMalformedEndpoint, len(tokens),
		)
	}

	return Cluster{
		Name: name,
		Host: host,
		IP:   tokens[0],
		Port: tokens[1],
	}, nil
}

// Create installs the Ray chart under the requested cluster name. Calling
// Create twice with the same name behaves however the installer's own
// exit code behaves; no duplicate check is made here.
func (r *ClusterRepository) Create(ctx context.Context, spec CreateSpec) (Cluster, error) {
	if spec.Name == "" {
		return Cluster{}, fmt.Errorf("create cluster: %w", ErrNameRequired)
	}

	if msgs := validation.IsDNS1123Subdomain(spec.Name); len(msgs) > 0 {
		return Cluster{}, fmt.Errorf(
			"create cluster: %w: %q: %s",
			ErrInvalidName, spec.Name, strings.Join(msgs, "; "),
		)
	}

	r.logger.WithField("cluster", spec.Name).Info("create cluster")

	err := r.helm.Install(ctx, r.namespace, spec.Name)
	if err != nil {
		return Cluster{}, fmt.Errorf("create cluster %q: %w", spec.Name, err)
	}

	return Cluster{Name: spec.Name}, nil
}

// Delete removes the named Ray cluster.
func (r *ClusterRepository) Delete(ctx context.Context, name string) error {
	r.logger.WithField("cluster", name).Info("delete cluster")

	err := r.kubectl.DeleteRayCluster(ctx, r.namespace, name)
	if err != nil {
		return fmt.Errorf("delete cluster %q: %w", name, r.classifier.Classify(err))
	}

	return nil
}
