package executor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	batchv1 "k8s.io/api/batch/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/docmatrix-ai/docmatrix/pkg/config"
)

const jobTemplate = `apiVersion: batch/v1
kind: Job
metadata:
  name: {{ .Name }}
  namespace: {{ .Namespace }}
spec:
  backoffLimit: 0
  template:
    spec:
      restartPolicy: Never
      containers:
        - name: worker
          image: {{ .Image }}
          command: ["run"]
          args: ["--mode", "{{ .Vars.mode }}"]
`

func writeTemplate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "agent-qa.yaml"), []byte(jobTemplate), 0o644)
	require.NoError(t, err)
	return dir
}

func newK8sExecutor(t *testing.T) *KubernetesExecutor {
	t.Helper()
	return NewKubernetesExecutorWithClient(fake.NewSimpleClientset(), &config.ExecutorConfig{
		Mode:        config.ExecutorKubernetes,
		Namespace:   "docmatrix-jobs",
		TemplateDir: writeTemplate(t),
	})
}

func TestJobSpecImage(t *testing.T) {
	assert.Equal(t, "agent:v3", JobSpec{ImageName: "agent", ImageTag: "v3"}.Image())
	assert.Equal(t, "agent:latest", JobSpec{ImageName: "agent"}.Image())
}

func TestNewUnknownMode(t *testing.T) {
	_, err := New(&config.ExecutorConfig{Mode: "vm"})
	assert.Error(t, err)
}

func TestKubernetesLaunchRendersTemplate(t *testing.T) {
	ctx := context.Background()
	e := newK8sExecutor(t)

	info, err := e.Launch(ctx, JobSpec{
		ContainerName: "qa-job-42",
		TemplateName:  "agent-qa",
		ImageName:     "docmatrix/agent",
		ImageTag:      "v1",
		EnvVars:       map[string]string{"API_KEY": "sa_abc", "API_ENDPOINT": "http://api:8080"},
		TemplateVars:  map[string]interface{}{"mode": "qa"},
	})
	require.NoError(t, err)
	assert.Equal(t, config.ExecutorKubernetes, info.Mode)
	assert.Equal(t, "qa-job-42", info.JobID)

	job, err := e.client.BatchV1().Jobs("docmatrix-jobs").Get(ctx, "qa-job-42", metav1.GetOptions{})
	require.NoError(t, err)

	container := job.Spec.Template.Spec.Containers[0]
	assert.Equal(t, "docmatrix/agent:v1", container.Image)
	assert.Equal(t, []string{"--mode", "qa"}, container.Args)

	// Env vars reach the pod even though the template omits them.
	envNames := make(map[string]string)
	for _, env := range container.Env {
		envNames[env.Name] = env.Value
	}
	assert.Equal(t, "sa_abc", envNames["API_KEY"])
	assert.Equal(t, "http://api:8080", envNames["API_ENDPOINT"])
}

func TestKubernetesLaunchMissingTemplate(t *testing.T) {
	e := newK8sExecutor(t)
	_, err := e.Launch(context.Background(), JobSpec{
		ContainerName: "x",
		TemplateName:  "no-such-template",
		ImageName:     "img",
	})
	assert.ErrorIs(t, err, ErrLaunchFailed)
}

func TestKubernetesCheckStatus(t *testing.T) {
	ctx := context.Background()
	e := newK8sExecutor(t)

	_, err := e.Launch(ctx, JobSpec{
		ContainerName: "qa-job-1",
		TemplateName:  "agent-qa",
		ImageName:     "img",
		TemplateVars:  map[string]interface{}{"mode": "qa"},
	})
	require.NoError(t, err)
	info := ExecutionInfo{Mode: config.ExecutorKubernetes, JobID: "qa-job-1", JobName: "qa-job-1"}

	status, err := e.CheckStatus(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, StateRunning, status.State)

	// Flip to succeeded.
	job, err := e.client.BatchV1().Jobs("docmatrix-jobs").Get(ctx, "qa-job-1", metav1.GetOptions{})
	require.NoError(t, err)
	job.Status.Succeeded = 1
	_, err = e.client.BatchV1().Jobs("docmatrix-jobs").UpdateStatus(ctx, job, metav1.UpdateOptions{})
	require.NoError(t, err)

	status, err = e.CheckStatus(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, status.State)
}

func TestKubernetesCheckStatusFailed(t *testing.T) {
	ctx := context.Background()
	e := newK8sExecutor(t)

	_, err := e.Launch(ctx, JobSpec{
		ContainerName: "qa-job-2",
		TemplateName:  "agent-qa",
		ImageName:     "img",
		TemplateVars:  map[string]interface{}{"mode": "qa"},
	})
	require.NoError(t, err)

	job, err := e.client.BatchV1().Jobs("docmatrix-jobs").Get(ctx, "qa-job-2", metav1.GetOptions{})
	require.NoError(t, err)
	job.Status.Failed = 1
	job.Status.Conditions = []batchv1.JobCondition{{
		Type:    batchv1.JobFailed,
		Status:  "True",
		Reason:  "BackoffLimitExceeded",
		Message: "Job has reached the specified backoff limit",
	}}
	_, err = e.client.BatchV1().Jobs("docmatrix-jobs").UpdateStatus(ctx, job, metav1.UpdateOptions{})
	require.NoError(t, err)

	status, err := e.CheckStatus(ctx, ExecutionInfo{JobID: "qa-job-2"})
	require.NoError(t, err)
	assert.Equal(t, StateFailed, status.State)
	assert.Contains(t, status.Reason, "BackoffLimitExceeded")
}

func TestKubernetesCheckStatusNotFound(t *testing.T) {
	e := newK8sExecutor(t)
	status, err := e.CheckStatus(context.Background(), ExecutionInfo{JobID: "gone"})
	require.NoError(t, err)
	assert.Equal(t, StateFailed, status.State)
	assert.Equal(t, "not found", status.Reason)
}

func TestKubernetesCleanupIdempotent(t *testing.T) {
	ctx := context.Background()
	e := newK8sExecutor(t)

	_, err := e.Launch(ctx, JobSpec{
		ContainerName: "qa-job-3",
		TemplateName:  "agent-qa",
		ImageName:     "img",
		TemplateVars:  map[string]interface{}{"mode": "qa"},
	})
	require.NoError(t, err)

	info := ExecutionInfo{JobID: "qa-job-3"}
	require.NoError(t, e.Cleanup(ctx, info))
	// Second cleanup of the same job is a no-op.
	require.NoError(t, e.Cleanup(ctx, info))
}
