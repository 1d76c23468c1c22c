// Package llm provides the suggestion providers used to pre-fill new events:
// OpenAI-compatible endpoints, Anthropic, and a static fallback.
package llm

const ideaPrompt = `You are a creative family assistant. Suggest a fun and simple family activity, goal, or important update.
The suggestion should be for a family with children.
The output must be a valid JSON object with two keys: 'title' (a short, actionable title) and 'description' (a one-sentence description).

Example:
{
  "title": "Backyard Movie Night",
  "description": "Set up a projector and watch a classic family movie under the stars."
}

Return ONLY JSON.`
