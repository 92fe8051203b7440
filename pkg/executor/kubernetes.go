package executor

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"text/template"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

// KubernetesExecutor runs jobs as batch/v1 Jobs rendered from manifest
// templates.
type KubernetesExecutor struct {
	client      kubernetes.Interface
	namespace   string
	templateDir string
}

// NewKubernetesExecutor creates the cluster backend. Prefers in-cluster
// credentials and falls back to the local kubeconfig.
func NewKubernetesExecutor(cfg *config.ExecutorConfig) (*KubernetesExecutor, error) {
	restCfg, err := rest.InClusterConfig()
	if err != nil {
		restCfg, err = clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			clientcmd.NewDefaultClientConfigLoadingRules(), nil).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load kubernetes config: %w", err)
		}
	}
	client, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return NewKubernetesExecutorWithClient(client, cfg), nil
}

// NewKubernetesExecutorWithClient wraps an existing clientset (used by
// tests with a fake clientset).
func NewKubernetesExecutorWithClient(client kubernetes.Interface, cfg *config.ExecutorConfig) *KubernetesExecutor {
	return &KubernetesExecutor{
		client:      client,
		namespace:   cfg.Namespace,
		templateDir: cfg.TemplateDir,
	}
}

// templateData is what manifest templates render against.
type templateData struct {
	Name      string
	Namespace string
	Image     string
	EnvVars   map[string]string
	Vars      map[string]interface{}
}

func (e *KubernetesExecutor) Launch(ctx context.Context, spec JobSpec) (ExecutionInfo, error) {
	if spec.TemplateName == "" {
		return ExecutionInfo{}, fmt.Errorf("%w: template name is required", ErrLaunchFailed)
	}

	job, err := e.renderJob(spec)
	if err != nil {
		return ExecutionInfo{}, fmt.Errorf("%w: %v", ErrLaunchFailed, err)
	}

	created, err := e.client.BatchV1().Jobs(e.namespace).Create(ctx, job, metav1.CreateOptions{})
	if err != nil {
		return ExecutionInfo{}, fmt.Errorf("%w: submit job %q: %v", ErrLaunchFailed, job.Name, err)
	}

	slog.Info("Submitted kubernetes job",
		"job_name", created.Name,
		"namespace", e.namespace,
		"image", spec.Image())

	return ExecutionInfo{
		Mode:    config.ExecutorKubernetes,
		JobID:   created.Name,
		JobName: created.Name,
	}, nil
}

// renderJob renders the named manifest template and decodes it into a
// batch/v1 Job. EnvVars are additionally injected into every container so
// credentials reach the pod even when a template omits them.
func (e *KubernetesExecutor) renderJob(spec JobSpec) (*batchv1.Job, error) {
	path := filepath.Join(e.templateDir, spec.TemplateName+".yaml")
	tmpl, err := template.New(filepath.Base(path)).ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", path, err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, templateData{
		Name:      spec.ContainerName,
		Namespace: e.namespace,
		Image:     spec.Image(),
		EnvVars:   spec.EnvVars,
		Vars:      spec.TemplateVars,
	})
	if err != nil {
		return nil, fmt.Errorf("render template %q: %w", path, err)
	}

	obj, _, err := scheme.Codecs.UniversalDeserializer().Decode(buf.Bytes(), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	job, ok := obj.(*batchv1.Job)
	if !ok {
		return nil, fmt.Errorf("manifest is %T, expected batch/v1 Job", obj)
	}

	if job.Name == "" {
		job.Name = spec.ContainerName
	}
	injectEnv(job, spec.EnvVars)
	return job, nil
}

func injectEnv(job *batchv1.Job, envVars map[string]string) {
	if len(envVars) == 0 {
		return
	}
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	containers := job.Spec.Template.Spec.Containers
	for i := range containers {
		for _, k := range keys {
			containers[i].Env = append(containers[i].Env, corev1.EnvVar{Name: k, Value: envVars[k]})
		}
	}
}

func (e *KubernetesExecutor) CheckStatus(ctx context.Context, info ExecutionInfo) (JobStatus, error) {
	job, err := e.client.BatchV1().Jobs(e.namespace).Get(ctx, info.JobID, metav1.GetOptions{})
	if err != nil {
		if apierrors.IsNotFound(err) {
			return JobStatus{State: StateFailed, Reason: "not found"}, nil
		}
		return JobStatus{}, fmt.Errorf("failed to get job %q: %w", info.JobID, err)
	}

	switch {
	case job.Status.Succeeded > 0:
		return JobStatus{State: StateCompleted}, nil
	case job.Status.Failed > 0:
		return JobStatus{State: StateFailed, Reason: failureReason(job)}, nil
	default:
		return JobStatus{State: StateRunning}, nil
	}
}

func failureReason(job *batchv1.Job) string {
	for _, cond := range job.Status.Conditions {
		if cond.Type == batchv1.JobFailed && cond.Status == corev1.ConditionTrue {
			return fmt.Sprintf("%s: %s", cond.Reason, cond.Message)
		}
	}
	return fmt.Sprintf("%d pod(s) failed", job.Status.Failed)
}

func (e *KubernetesExecutor) Cleanup(ctx context.Context, info ExecutionInfo) error {
	policy := metav1.DeletePropagationBackground
	err := e.client.BatchV1().Jobs(e.namespace).Delete(ctx, info.JobID, metav1.DeleteOptions{
		PropagationPolicy: &policy,
	})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("failed to delete job %q: %w", info.JobID, err)
	}
	return nil
}
